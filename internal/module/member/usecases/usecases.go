package usecases

import (
	"context"
	"strings"
	"time"

	"turf-booking-service/internal/module/member/models/entity"
	"turf-booking-service/internal/module/member/models/request"
	"turf-booking-service/internal/module/member/models/response"
	"turf-booking-service/internal/module/member/repositories"
	"turf-booking-service/internal/pkg/errors"
	"turf-booking-service/internal/pkg/log"
	"turf-booking-service/internal/pkg/notification"

	"golang.org/x/crypto/bcrypt"
)

type IDAllocator interface {
	Next(ctx context.Context) (string, error)
}

type TokenSigner interface {
	Sign(memberID, memberType, email string) (string, error)
	TTL() time.Duration
}

type Notifier interface {
	Notify(ctx context.Context, msg notification.Message)
}

type usecase struct {
	repo      repositories.Repositories
	allocator IDAllocator
	signer    TokenSigner
	notifier  Notifier
	log       log.Logger
}

type Usecase interface {
	// http
	Signup(ctx context.Context, req *request.Signup) (response.Signup, error)
	Login(ctx context.Context, req *request.Login) (response.Login, error)
	Logout(ctx context.Context, pmaID string) error
}

func New(repo repositories.Repositories, alloc IDAllocator, signer TokenSigner, notifier Notifier, log log.Logger) Usecase {
	return &usecase{
		repo:      repo,
		allocator: alloc,
		signer:    signer,
		notifier:  notifier,
		log:       log,
	}
}

func (u *usecase) Signup(ctx context.Context, req *request.Signup) (response.Signup, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	taken, err := u.repo.FindTakenIdentities(ctx, email, req.Phone, req.NID)
	if err != nil {
		return response.Signup{}, err
	}
	if len(taken) > 0 {
		return response.Signup{}, errors.Conflict("already registered: " + strings.Join(taken, ", "))
	}

	dob, err := time.Parse("2006-01-02", req.Dob)
	if err != nil {
		return response.Signup{}, errors.BadRequest("dob must be YYYY-MM-DD")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Error(ctx, "error hash password", err)
		return response.Signup{}, errors.InternalServerError("error create member")
	}

	pmaID, err := u.allocator.Next(ctx)
	if err != nil {
		return response.Signup{}, errors.InternalServerError("error allocate member id")
	}

	member := entity.Member{
		PmaID:         pmaID,
		FirstName:     strings.TrimSpace(req.FirstName),
		LastName:      strings.TrimSpace(req.LastName),
		Phone:         req.Phone,
		Dob:           dob,
		NID:           req.NID,
		Email:         email,
		Password:      string(hash),
		Type:          entity.MemberTypeRegular,
		Status:        entity.MemberStatusActive,
		TermsAccepted: req.TermsAccepted,
	}
	if err := u.repo.CreateMember(ctx, member); err != nil {
		return response.Signup{}, err
	}

	u.notifier.Notify(ctx, notification.New(notification.KindMemberSignup,
		"🆔 Member ID", pmaID,
		"👤 Name", strings.TrimSpace(member.FirstName+" "+member.LastName),
		"📧 Email", email,
	))

	return response.Signup{PmaID: pmaID}, nil
}

// Login answers the same way for an unknown email and a wrong password.
func (u *usecase) Login(ctx context.Context, req *request.Login) (response.Login, error) {
	member, err := u.repo.FindMemberByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		return response.Login{}, err
	}
	if member == nil {
		return response.Login{}, errors.UnauthorizedError("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(member.Password), []byte(req.Password)); err != nil {
		u.log.Warn(ctx, "invalid password", member.PmaID)
		return response.Login{}, errors.UnauthorizedError("invalid credentials")
	}
	if member.Status != entity.MemberStatusActive {
		return response.Login{}, errors.Forbidden("account is inactive")
	}

	token, err := u.signer.Sign(member.PmaID, member.Type, member.Email)
	if err != nil {
		u.log.Error(ctx, "error sign session", err, member.PmaID)
		return response.Login{}, errors.InternalServerError("error create session")
	}

	if err := u.repo.RecordLogin(ctx, member.PmaID); err != nil {
		u.log.Warn(ctx, "error record login", err, member.PmaID)
	}

	return response.Login{
		PmaID:     member.PmaID,
		Type:      member.Type,
		Email:     member.Email,
		ExpiresAt: time.Now().Add(u.signer.TTL()),
		Token:     token,
	}, nil
}

func (u *usecase) Logout(ctx context.Context, pmaID string) error {
	if pmaID == "" {
		return nil
	}
	return u.repo.RecordLogout(ctx, pmaID)
}
