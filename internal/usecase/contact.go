package usecase

import (
	"context"
	"time"

	"go-marketing-backend/internal/domain"
	"go-marketing-backend/pkg/crm"
	"go-marketing-backend/pkg/logger"
	"go-marketing-backend/pkg/notify"
)

type contactUsecase struct {
	dispatcher *notify.Dispatcher
	crm        *crm.Client
	loc        *time.Location
	sync       bool
}

// NewContactUsecase creates a new contact usecase. syncDispatch makes the
// caller wait for the delivery outcome; it is a debugging toggle, the
// default path is fire-and-forget.
func NewContactUsecase(dispatcher *notify.Dispatcher, crmClient *crm.Client, loc *time.Location, syncDispatch bool) domain.ContactUsecase {
	return &contactUsecase{
		dispatcher: dispatcher,
		crm:        crmClient,
		loc:        loc,
		sync:       syncDispatch,
	}
}

// SubmitContact builds the submission, rejects it when no transport is
// available for the active dispatch mode, then schedules delivery and the
// CRM workflow. The CRM workflow is fire-and-forget in both dispatch modes
// and can never affect the returned error.
func (uc *contactUsecase) SubmitContact(ctx context.Context, req *domain.ContactRequest) (*domain.ContactSubmission, error) {
	sub := domain.NewContactSubmission(req)

	if !uc.dispatcher.Available() {
		return nil, domain.ErrNoTransportConfigured
	}

	msg := uc.buildMessage(sub)

	// Background tasks run on fresh contexts: they must outlive the
	// request and ignore client disconnects.
	go uc.crm.FollowUp(context.Background(), crm.ContactInput{
		FirstName: sub.FirstName,
		LastName:  sub.LastName,
		Email:     sub.Email,
		Phone:     sub.Phone,
		Company:   sub.Company,
	}, sub.Service)

	if uc.sync {
		if res := uc.dispatcher.Dispatch(ctx, msg); !res.Delivered {
			return nil, domain.ErrDispatchFailed
		}
		logger.Log.Info("Contact form submitted", "contact_id", sub.ID, "email", sub.Email)
		return sub, nil
	}

	go uc.dispatcher.Dispatch(context.Background(), msg)

	logger.Log.Info("Contact form submitted", "contact_id", sub.ID, "email", sub.Email)
	return sub, nil
}

func (uc *contactUsecase) buildMessage(sub *domain.ContactSubmission) notify.Message {
	return notify.Message{
		Name:    sub.FullName(),
		Company: sub.Company,
		Service: sub.Service,
		Email:   sub.Email,
		Phone:   sub.Phone,
		Time:    notify.Timestamp(uc.loc),
		Body:    sub.Message,
	}
}
