package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "partylink/pkg/app_errors"

	"github.com/redis/go-redis/v9"
)

type OTPStore interface {
	// 儲存：覆蓋同 email 先前的驗證碼並重置嘗試次數
	SaveCode(ctx context.Context, email string, codeHash string, ttl time.Duration) error
	// 驗證：比對成功即刪除 (使用Lua腳本確保原子性)
	VerifyCode(ctx context.Context, email string, codeHash string, maxAttempts int) error
	// 儲存 magic link code，只能使用一次
	SaveMagicLink(ctx context.Context, codeHash string, email string, ttl time.Duration) error
	// 取出並刪除 magic link 對應的 email
	ConsumeMagicLink(ctx context.Context, codeHash string) (string, error)
}

type RedisOTPStoreImpl struct {
	client *redis.Client
}

func NewRedisOTPStore(client *redis.Client) OTPStore {
	return &RedisOTPStoreImpl{
		client: client,
	}
}

// 驗證碼 key
func (s *RedisOTPStoreImpl) getCodeKey(email string) string {
	return fmt.Sprintf("auth:otp:%s", strings.ToLower(strings.TrimSpace(email)))
}

// magic link 的 key
func (s *RedisOTPStoreImpl) getMagicLinkKey(codeHash string) string {
	return fmt.Sprintf("auth:magic:%s", codeHash)
}

func (s *RedisOTPStoreImpl) SaveCode(ctx context.Context, email string, codeHash string, ttl time.Duration) error {
	key := s.getCodeKey(email)
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, map[string]interface{}{
		"hash":     codeHash,
		"attempts": 0,
	})
	pipe.PExpire(ctx, key, ttl)
	_, err := pipe.Exec(ctx)
	return err
}

/*
驗證碼比對 (使用Lua腳本確保原子性)
 1. 不存在或過期回傳 -1
 2. 嘗試次數已達上限回傳 -2 並刪除
 3. 比對成功回傳 1 並刪除
 4. 比對失敗增加嘗試次數回傳 0
*/
var verifyCodeScript = redis.NewScript(`
	local key = KEYS[1]
	local submitted = ARGV[1]
	local max_attempts = tonumber(ARGV[2])

	local data = redis.call('HMGET', key, 'hash', 'attempts')
	local stored = data[1]
	if not stored then
		return -1
	end

	local attempts = tonumber(data[2]) or 0
	if attempts >= max_attempts then
		redis.call('DEL', key)
		return -2
	end

	if stored == submitted then
		redis.call('DEL', key)
		return 1
	end

	attempts = redis.call('HINCRBY', key, 'attempts', 1)
	if attempts >= max_attempts then
		redis.call('DEL', key)
		return -2
	end
	return 0
`)

func (s *RedisOTPStoreImpl) VerifyCode(ctx context.Context, email string, codeHash string, maxAttempts int) error {
	code, err := verifyCodeScript.Run(ctx, s.client, []string{s.getCodeKey(email)}, codeHash, maxAttempts).Int64()
	if err != nil {
		return err
	}

	switch code {
	case 1:
		return nil
	case -2:
		return apperrors.ErrTooManyAttempts
	case 0, -1:
		return apperrors.ErrInvalidCode
	default:
		return errors.New("unexpected result")
	}
}

func (s *RedisOTPStoreImpl) SaveMagicLink(ctx context.Context, codeHash string, email string, ttl time.Duration) error {
	return s.client.Set(ctx, s.getMagicLinkKey(codeHash), strings.ToLower(strings.TrimSpace(email)), ttl).Err()
}

func (s *RedisOTPStoreImpl) ConsumeMagicLink(ctx context.Context, codeHash string) (string, error) {
	email, err := s.client.GetDel(ctx, s.getMagicLinkKey(codeHash)).Result()
	if err == redis.Nil {
		return "", apperrors.ErrMagicLinkNotFound
	}
	if err != nil {
		return "", err
	}
	return email, nil
}
