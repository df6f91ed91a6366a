package model

import "strings"

// AttendanceStatus 出席狀態
type AttendanceStatus string

const (
	AttendancePending AttendanceStatus = "pending"
	AttendanceYes     AttendanceStatus = "yes"
	AttendanceNo      AttendanceStatus = "no"
	AttendanceMaybe   AttendanceStatus = "maybe"
)

// IsValid 驗證狀態是否有效
func (s AttendanceStatus) IsValid() bool {
	switch s {
	case AttendancePending, AttendanceYes, AttendanceNo, AttendanceMaybe:
		return true
	}
	return false
}

// IsFinal reports whether the guest has answered.
func (s AttendanceStatus) IsFinal() bool {
	switch s {
	case AttendanceYes, AttendanceNo, AttendanceMaybe:
		return true
	}
	return false
}

// Label 顯示用文字，例如 "Yes"
func (s AttendanceStatus) Label() string {
	if !s.IsValid() {
		return "Pending"
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// ParseAttendanceStatus 不分大小寫；未知或空值一律視為 pending
func ParseAttendanceStatus(value string) AttendanceStatus {
	s := AttendanceStatus(strings.ToLower(strings.TrimSpace(value)))
	if !s.IsValid() {
		return AttendancePending
	}
	return s
}

// ParseRSVPAnswer 只接受訪客可提交的 yes/no/maybe
func ParseRSVPAnswer(value string) (AttendanceStatus, bool) {
	s := AttendanceStatus(strings.ToLower(strings.TrimSpace(value)))
	return s, s.IsFinal()
}

type SetAttendanceRequest struct {
	Status string `json:"status" binding:"required"`
}
