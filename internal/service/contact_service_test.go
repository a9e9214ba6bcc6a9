package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

func TestContactSubmit_RecordsCallerIdentity(t *testing.T) {
	mem := newMemStore()
	svc := NewContactService(contactStore{mem: mem}, newFakeMailer(), zerolog.Nop())
	principal := donorPrincipal()

	query, err := svc.Submit(context.Background(), SubmitContactInput{
		Subject:   "  Donation receipt missing  ",
		Message:   "I donated last week but never received a receipt.",
		Principal: principal,
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if query.Subject != "Donation receipt missing" {
		t.Errorf("subject not trimmed: %q", query.Subject)
	}
	if query.UserID != principal.UserID || query.Email != principal.Email {
		t.Errorf("caller identity not recorded: %+v", query)
	}
}

func TestContactSubmit_Validation(t *testing.T) {
	svc := NewContactService(contactStore{mem: newMemStore()}, newFakeMailer(), zerolog.Nop())

	_, err := svc.Submit(context.Background(), SubmitContactInput{Message: "no subject", Principal: donorPrincipal()})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("missing subject: expected ErrInvalidInput, got %v", err)
	}
	_, err = svc.Submit(context.Background(), SubmitContactInput{Subject: "no message", Principal: donorPrincipal()})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("missing message: expected ErrInvalidInput, got %v", err)
	}
}

func TestContactList_StaffOnly(t *testing.T) {
	mem := newMemStore()
	svc := NewContactService(contactStore{mem: mem}, newFakeMailer(), zerolog.Nop())

	if _, err := svc.List(context.Background(), donorPrincipal()); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
	if _, err := svc.List(context.Background(), staffPrincipal()); err != nil {
		t.Fatalf("staff list: %v", err)
	}
}

func TestContactReply_SendsMailWithoutPersisting(t *testing.T) {
	mem := newMemStore()
	mail := newFakeMailer()
	svc := NewContactService(contactStore{mem: mem}, mail, zerolog.Nop())

	query, err := svc.Submit(context.Background(), SubmitContactInput{
		Subject:   "Tax certificate",
		Message:   "How do I get my 80G certificate?",
		Principal: donorPrincipal(),
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	err = svc.Reply(context.Background(), ReplyInput{
		QueryID:   query.ID,
		Message:   "Your certificate is attached to your receipt page.",
		Principal: staffPrincipal(),
	})
	if err != nil {
		t.Fatalf("Reply: %v", err)
	}

	if len(mail.sent) != 1 {
		t.Fatalf("expected 1 mail, got %d", len(mail.sent))
	}
	if mail.sent[0].To != query.Email {
		t.Errorf("recipient: got %s", mail.sent[0].To)
	}
	if mail.sent[0].Subject != "Re: Tax certificate" {
		t.Errorf("default subject: got %q", mail.sent[0].Subject)
	}
	if len(mem.contacts) != 1 {
		t.Errorf("reply was persisted; query log should stay append-only")
	}
}

func TestContactReply_Errors(t *testing.T) {
	mem := newMemStore()
	mail := newFakeMailer()
	svc := NewContactService(contactStore{mem: mem}, mail, zerolog.Nop())

	query, err := svc.Submit(context.Background(), SubmitContactInput{
		Subject:   "Hello",
		Message:   "General question",
		Principal: donorPrincipal(),
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	err = svc.Reply(context.Background(), ReplyInput{QueryID: query.ID, Message: "hi", Principal: donorPrincipal()})
	if !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("non-staff reply: expected ErrPermissionDenied, got %v", err)
	}

	err = svc.Reply(context.Background(), ReplyInput{QueryID: uuid.New(), Message: "hi", Principal: staffPrincipal()})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown query: expected ErrNotFound, got %v", err)
	}

	mail.failTo[query.Email] = true
	err = svc.Reply(context.Background(), ReplyInput{QueryID: query.ID, Message: "hi", Principal: staffPrincipal()})
	if !errors.Is(err, ErrDeliveryFailed) {
		t.Fatalf("delivery failure: expected ErrDeliveryFailed, got %v", err)
	}
}
