package repository

import (
	"errors"

	"partylink/pkg/securetoken"
)

const inviteTokenBytes = 32

var errInviteExists = errors.New("invite already exists")

// newInviteToken 邀請 token 是訪客唯一的憑證，必須不可猜測
var newInviteToken = func() (string, error) {
	return securetoken.Hex(inviteTokenBytes)
}
