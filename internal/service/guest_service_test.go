package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"partylink/internal/model"
	repoMocks "partylink/internal/repository/mocks"
	"partylink/internal/service"
	apperrors "partylink/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "https://partylink.co"

func setupGuestServiceMocks(t *testing.T) (
	*repoMocks.MockEventRepository,
	*repoMocks.MockInviteRepository,
	*[]model.AuditAction,
	service.GuestService,
) {
	eventRepo := repoMocks.NewMockEventRepository(t)
	inviteRepo := repoMocks.NewMockInviteRepository(t)
	audit, actions := expectAudit(t)
	return eventRepo, inviteRepo, actions, service.NewGuestService(eventRepo, inviteRepo, audit, testBaseURL)
}

func TestGuestService_ListGuests(t *testing.T) {
	ctx := context.Background()
	eventRepo, inviteRepo, _, svc := setupGuestServiceMocks(t)

	event := &model.Event{ID: testEventID, Title: "Tom's 7th Birthday"}
	eventRepo.EXPECT().FindByIDForHost(ctx, testHostID, testEventID).Return(event, nil).Once()
	inviteRepo.EXPECT().ListGuests(ctx, testHostID, testEventID).Return([]*model.GuestRow{
		{InviteToken: "a", ChildName: "Mia", PhoneE164: ptr("+6581234567"), Method: model.InviteMethodWhatsApp, Status: model.InviteStatusNotSent, Attendance: model.AttendancePending},
		{InviteToken: "b", ChildName: "Leo", Method: model.InviteMethodManual, Status: model.InviteStatusNotSent, Attendance: model.AttendanceYes},
	}, nil).Once()

	list, err := svc.ListGuests(ctx, testHostID, testEventID)
	require.NoError(t, err)

	assert.Equal(t, "2 Guests in List", list.GuestCountLabel)
	require.Len(t, list.Guests, 2)

	mia := list.Guests[0]
	assert.Equal(t, "Not sent", mia.DisplayStatus)
	assert.Equal(t, "81234567", mia.PhoneDisplay)
	require.NotNil(t, mia.WhatsAppAction)
	assert.Equal(t, "Send", *mia.WhatsAppAction)

	leo := list.Guests[1]
	assert.Equal(t, "Yes", leo.DisplayStatus)
	assert.Nil(t, leo.WhatsAppAction)
}

func TestGuestService_ListGuests_EventNotFound(t *testing.T) {
	ctx := context.Background()
	eventRepo, _, _, svc := setupGuestServiceMocks(t)

	eventRepo.EXPECT().FindByIDForHost(ctx, testHostID, testEventID).Return(nil, apperrors.ErrEventNotFound).Once()

	_, err := svc.ListGuests(ctx, testHostID, testEventID)
	assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
}

func TestGuestService_AddGuest(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults to WhatsApp and normalizes phone", func(t *testing.T) {
		_, inviteRepo, actions, svc := setupGuestServiceMocks(t)

		inviteRepo.EXPECT().CreateInviteWithParticipant(ctx, testHostID, testEventID, model.NewGuestParams{
			ChildName:  "Mia",
			ParentName: ptr("Anna"),
			PhoneE164:  ptr("+6581234567"),
			Method:     model.InviteMethodWhatsApp,
		}).Return(&model.GuestRow{
			InviteToken: "tok",
			ChildName:   "Mia",
			PhoneE164:   ptr("+6581234567"),
			Method:      model.InviteMethodWhatsApp,
			Status:      model.InviteStatusNotSent,
			Attendance:  model.AttendancePending,
		}, nil).Once()

		item, err := svc.AddGuest(ctx, testHostID, testEventID, model.AddGuestRequest{
			ChildName:  " Mia ",
			ParentName: ptr("Anna"),
			Phone:      ptr("8123 4567"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Not sent", item.DisplayStatus)
		assert.Equal(t, []model.AuditAction{model.AuditGuestAdded}, *actions)
	})

	t.Run("Manual when WhatsApp is off", func(t *testing.T) {
		_, inviteRepo, _, svc := setupGuestServiceMocks(t)

		inviteRepo.EXPECT().CreateInviteWithParticipant(ctx, testHostID, testEventID, mock.MatchedBy(func(p model.NewGuestParams) bool {
			return p.Method == model.InviteMethodManual && p.PhoneE164 == nil && p.ParentName == nil
		})).Return(&model.GuestRow{ChildName: "Leo", Method: model.InviteMethodManual, Status: model.InviteStatusNotSent}, nil).Once()

		item, err := svc.AddGuest(ctx, testHostID, testEventID, model.AddGuestRequest{
			ChildName:       "Leo",
			ParentName:      ptr(" "),
			Phone:           ptr(""),
			SendViaWhatsApp: ptr(false),
		})
		require.NoError(t, err)
		assert.Equal(t, "Pending", item.DisplayStatus)
	})

	t.Run("Child name required", func(t *testing.T) {
		_, _, actions, svc := setupGuestServiceMocks(t)

		_, err := svc.AddGuest(ctx, testHostID, testEventID, model.AddGuestRequest{ChildName: "   "})
		assert.ErrorIs(t, err, apperrors.ErrChildNameRequired)
		assert.Empty(t, *actions)
	})

	t.Run("Repository failure is returned", func(t *testing.T) {
		_, inviteRepo, actions, svc := setupGuestServiceMocks(t)

		inviteRepo.EXPECT().CreateInviteWithParticipant(ctx, testHostID, testEventID, mock.Anything).Return(nil, apperrors.ErrEventNotFound).Once()

		_, err := svc.AddGuest(ctx, testHostID, testEventID, model.AddGuestRequest{ChildName: "Mia"})
		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
		assert.Empty(t, *actions)
	})
}

func TestGuestService_AddPreviousGuests(t *testing.T) {
	ctx := context.Background()
	participant := uuid.MustParse("11111111-2222-4333-8444-555555555555")

	t.Run("Empty selection rejected", func(t *testing.T) {
		_, _, _, svc := setupGuestServiceMocks(t)

		_, err := svc.AddPreviousGuests(ctx, testHostID, testEventID, model.AddPreviousGuestsRequest{})
		assert.ErrorIs(t, err, apperrors.ErrNoGuestsSelected)
	})

	t.Run("Defaults to manual and dedupes selection", func(t *testing.T) {
		_, inviteRepo, actions, svc := setupGuestServiceMocks(t)

		inviteRepo.EXPECT().AddInvitesForPreviousGuests(ctx, testHostID, testEventID, []model.PreviousGuest{
			{ParticipantID: participant, ChildName: "Leo"},
		}, model.InviteMethodManual).Return(model.AddPreviousGuestsResult{Added: 1}, nil).Once()

		result, err := svc.AddPreviousGuests(ctx, testHostID, testEventID, model.AddPreviousGuestsRequest{
			Guests: []model.PreviousGuest{
				{ParticipantID: participant, ChildName: "Leo"},
				{ParticipantID: participant, ChildName: "Leo"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Added)
		assert.Equal(t, []model.AuditAction{model.AuditGuestsImported}, *actions)
	})

	t.Run("Invalid method", func(t *testing.T) {
		_, _, _, svc := setupGuestServiceMocks(t)

		method := model.InviteMethod("sms")
		_, err := svc.AddPreviousGuests(ctx, testHostID, testEventID, model.AddPreviousGuestsRequest{
			Guests: []model.PreviousGuest{{ParticipantID: participant}},
			Method: &method,
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestGuestService_UpdateGuest(t *testing.T) {
	ctx := context.Background()
	_, inviteRepo, actions, svc := setupGuestServiceMocks(t)

	inviteRepo.EXPECT().UpdateEventInviteDetails(ctx, testHostID, testEventID, "tok", model.UpdateGuestParams{
		ChildName: "Mia Tan",
		PhoneE164: ptr("+6591234567"),
	}).Return(nil).Once()
	inviteRepo.EXPECT().FindGuest(ctx, testHostID, testEventID, "tok").Return(&model.GuestRow{InviteToken: "tok", ChildName: "Mia Tan"}, nil).Once()

	item, err := svc.UpdateGuest(ctx, testHostID, testEventID, "tok", model.UpdateGuestRequest{
		ChildName: "Mia Tan",
		Phone:     ptr("6591234567"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Mia Tan", item.ChildName)
	assert.Equal(t, []model.AuditAction{model.AuditGuestUpdated}, *actions)
}

func TestGuestService_DeleteGuest(t *testing.T) {
	ctx := context.Background()
	_, inviteRepo, actions, svc := setupGuestServiceMocks(t)

	inviteRepo.EXPECT().DeleteEventInvite(ctx, testHostID, testEventID, "missing").Return(apperrors.ErrGuestNotFound).Once()

	err := svc.DeleteGuest(ctx, testHostID, testEventID, "missing")
	assert.ErrorIs(t, err, apperrors.ErrGuestNotFound)
	assert.Empty(t, *actions)
}

func TestGuestService_SetAttendance(t *testing.T) {
	ctx := context.Background()

	for _, status := range []string{"pending", "yes", "no", "MAYBE"} {
		t.Run("Accepts "+status, func(t *testing.T) {
			_, inviteRepo, _, svc := setupGuestServiceMocks(t)
			want := model.AttendanceStatus(strings.ToLower(status))

			inviteRepo.EXPECT().SetAttendanceStatus(ctx, testHostID, testEventID, "tok", want).Return(nil).Once()
			inviteRepo.EXPECT().FindGuest(ctx, testHostID, testEventID, "tok").
				Return(&model.GuestRow{Attendance: want, Method: model.InviteMethodManual}, nil).Once()

			_, err := svc.SetAttendance(ctx, testHostID, testEventID, "tok", status)
			require.NoError(t, err)
		})
	}

	t.Run("Rejects unknown status", func(t *testing.T) {
		_, _, _, svc := setupGuestServiceMocks(t)

		_, err := svc.SetAttendance(ctx, testHostID, testEventID, "tok", "later")
		assert.ErrorIs(t, err, apperrors.ErrInvalidAttendanceStatus)
	})
}

func TestGuestService_OpenWhatsApp(t *testing.T) {
	ctx := context.Background()
	event := &model.Event{ID: testEventID, Title: "Tom's 7th Birthday"}

	t.Run("First open marks whatsapp_sent", func(t *testing.T) {
		eventRepo, inviteRepo, actions, svc := setupGuestServiceMocks(t)

		eventRepo.EXPECT().FindByIDForHost(ctx, testHostID, testEventID).Return(event, nil).Once()
		inviteRepo.EXPECT().FindGuest(ctx, testHostID, testEventID, "tok").Return(&model.GuestRow{
			InviteToken: "tok",
			ParentName:  ptr("Anna"),
			PhoneE164:   ptr("+6581234567"),
			Method:      model.InviteMethodWhatsApp,
			Status:      model.InviteStatusNotSent,
		}, nil).Once()
		inviteRepo.EXPECT().MarkWhatsAppSent(ctx, testHostID, testEventID, "tok").Return(true, nil).Once()

		share, err := svc.OpenWhatsApp(ctx, testHostID, testEventID, "tok")
		require.NoError(t, err)

		assert.True(t, share.Marked)
		assert.Equal(t, model.InviteStatusWhatsAppSent, share.Status)
		assert.Equal(t, "Resend", share.ActionLabel)
		assert.True(t, strings.HasPrefix(share.URL, "https://wa.me/6581234567?text="))
		assert.Contains(t, share.URL, "https%3A%2F%2Fpartylink.co%2Frsvp%2Ftok")
		assert.Equal(t, []model.AuditAction{model.AuditWhatsAppSent}, *actions)
	})

	t.Run("Resend does not change status", func(t *testing.T) {
		eventRepo, inviteRepo, actions, svc := setupGuestServiceMocks(t)

		eventRepo.EXPECT().FindByIDForHost(ctx, testHostID, testEventID).Return(event, nil).Once()
		inviteRepo.EXPECT().FindGuest(ctx, testHostID, testEventID, "tok").Return(&model.GuestRow{
			InviteToken: "tok",
			Method:      model.InviteMethodWhatsApp,
			Status:      model.InviteStatusAcknowledged,
		}, nil).Once()

		share, err := svc.OpenWhatsApp(ctx, testHostID, testEventID, "tok")
		require.NoError(t, err)
		assert.False(t, share.Marked)
		assert.Equal(t, model.InviteStatusAcknowledged, share.Status)
		assert.True(t, strings.HasPrefix(share.URL, "https://wa.me/?text="))
		assert.Empty(t, *actions)
	})

	t.Run("Mark failure still returns link", func(t *testing.T) {
		eventRepo, inviteRepo, _, svc := setupGuestServiceMocks(t)

		eventRepo.EXPECT().FindByIDForHost(ctx, testHostID, testEventID).Return(event, nil).Once()
		inviteRepo.EXPECT().FindGuest(ctx, testHostID, testEventID, "tok").Return(&model.GuestRow{
			InviteToken: "tok",
			Method:      model.InviteMethodWhatsApp,
			Status:      model.InviteStatusNotSent,
		}, nil).Once()
		inviteRepo.EXPECT().MarkWhatsAppSent(ctx, testHostID, testEventID, "tok").Return(false, errors.New("db down")).Once()

		share, err := svc.OpenWhatsApp(ctx, testHostID, testEventID, "tok")
		require.NoError(t, err)
		assert.False(t, share.Marked)
		assert.Equal(t, model.InviteStatusNotSent, share.Status)
		assert.Equal(t, "Send", share.ActionLabel)
	})

	t.Run("Manual invites rejected", func(t *testing.T) {
		eventRepo, inviteRepo, _, svc := setupGuestServiceMocks(t)

		eventRepo.EXPECT().FindByIDForHost(ctx, testHostID, testEventID).Return(event, nil).Once()
		inviteRepo.EXPECT().FindGuest(ctx, testHostID, testEventID, "tok").Return(&model.GuestRow{
			Method: model.InviteMethodManual,
			Status: model.InviteStatusNotSent,
		}, nil).Once()

		_, err := svc.OpenWhatsApp(ctx, testHostID, testEventID, "tok")
		assert.ErrorIs(t, err, apperrors.ErrNotWhatsAppInvite)
	})
}
