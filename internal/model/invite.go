package model

// InviteMethod 邀請方式
type InviteMethod string

const (
	InviteMethodWhatsApp InviteMethod = "whatsapp"
	InviteMethodManual   InviteMethod = "manual"
)

func (m InviteMethod) IsValid() bool {
	switch m {
	case InviteMethodWhatsApp, InviteMethodManual:
		return true
	}
	return false
}

// InviteStatus 邀請傳送狀態
type InviteStatus string

const (
	InviteStatusNotSent      InviteStatus = "not_sent"
	InviteStatusWhatsAppSent InviteStatus = "whatsapp_sent"
	InviteStatusAcknowledged InviteStatus = "acknowledged"
)

// IsValid 驗證狀態是否有效
func (s InviteStatus) IsValid() bool {
	switch s {
	case InviteStatusNotSent, InviteStatusWhatsAppSent, InviteStatusAcknowledged:
		return true
	}
	return false
}

// CanTransitionTo 檢查是否可以轉換到目標狀態
func (s InviteStatus) CanTransitionTo(target InviteStatus) bool {
	transitions := map[InviteStatus][]InviteStatus{
		InviteStatusNotSent:      {InviteStatusWhatsAppSent},
		InviteStatusWhatsAppSent: {InviteStatusAcknowledged},
		InviteStatusAcknowledged: {}, // 終態
	}

	allowed, ok := transitions[s]
	if !ok {
		return false
	}

	for _, status := range allowed {
		if status == target {
			return true
		}
	}
	return false
}
