package usecases_test

import (
	"context"
	"testing"
	"time"

	"turf-booking-service/internal/module/member/mocks"
	"turf-booking-service/internal/module/member/models/entity"
	"turf-booking-service/internal/module/member/models/request"
	"turf-booking-service/internal/module/member/usecases"
	"turf-booking-service/internal/pkg/allocator"
	"turf-booking-service/internal/pkg/auth"
	"turf-booking-service/internal/pkg/errors"
	log_internal "turf-booking-service/internal/pkg/log"
	"turf-booking-service/internal/pkg/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var (
	uc           usecases.Usecase
	repoMock     *mocks.Repositories
	notifierMock *mocks.Notifier
	signer       *auth.Signer
	ctx          = context.Background()
)

func setup() {
	repoMock = new(mocks.Repositories)
	notifierMock = new(mocks.Notifier)
	notifierMock.On("Notify", mock.Anything, mock.Anything).Return()
	signer = auth.NewSigner("test-secret", time.Hour)
	alloc := allocator.New(allocator.MemberFormat, "", repoMock.LastMemberID, nil, log_internal.Nop())
	uc = usecases.New(repoMock, alloc, signer, notifierMock, log_internal.Nop())
}

func teardown() {
	uc = nil
	repoMock = nil
	notifierMock = nil
}

func signupRequest() *request.Signup {
	return &request.Signup{
		FirstName:     "Rahim",
		LastName:      "Uddin",
		Phone:         "01700000000",
		Dob:           "1995-01-02",
		NID:           "1990123456",
		Email:         "Rahim@Example.com",
		Password:      "secret123",
		TermsAccepted: true,
	}
}

func hashed(t *testing.T, password string) string {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(b)
}

func TestSignup(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindTakenIdentities", ctx, "rahim@example.com", "01700000000", "1990123456").Return([]string{}, nil)
		repoMock.On("LastMemberID", ctx).Return("M09PMA", nil)
		repoMock.On("CreateMember", ctx, mock.MatchedBy(func(m entity.Member) bool {
			return m.PmaID == "M10PMA" &&
				m.Email == "rahim@example.com" &&
				m.Status == entity.MemberStatusActive &&
				bcrypt.CompareHashAndPassword([]byte(m.Password), []byte("secret123")) == nil
		})).Return(nil)

		resp, err := uc.Signup(ctx, signupRequest())
		require.NoError(t, err)
		assert.Equal(t, "M10PMA", resp.PmaID)
		notifierMock.AssertCalled(t, "Notify", ctx, mock.MatchedBy(func(m notification.Message) bool {
			return m.Kind == notification.KindMemberSignup && m.Fields["🆔 Member ID"] == "M10PMA"
		}))
	})

	t.Run("first member", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindTakenIdentities", ctx, mock.Anything, mock.Anything, mock.Anything).Return([]string{}, nil)
		repoMock.On("LastMemberID", ctx).Return("", nil)
		repoMock.On("CreateMember", ctx, mock.MatchedBy(func(m entity.Member) bool { return m.PmaID == "M01PMA" })).Return(nil)

		resp, err := uc.Signup(ctx, signupRequest())
		require.NoError(t, err)
		assert.Equal(t, "M01PMA", resp.PmaID)
	})

	t.Run("duplicate identity", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindTakenIdentities", ctx, mock.Anything, mock.Anything, mock.Anything).Return([]string{"email", "nid"}, nil)

		_, err := uc.Signup(ctx, signupRequest())
		assert.Equal(t, 409, errors.StatusCode(err))
		assert.Equal(t, "already registered: email, nid", errors.Message(err))
		repoMock.AssertNotCalled(t, "CreateMember", mock.Anything, mock.Anything)
	})

	t.Run("insert race loses on unique key", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindTakenIdentities", ctx, mock.Anything, mock.Anything, mock.Anything).Return([]string{}, nil)
		repoMock.On("LastMemberID", ctx).Return("M09PMA", nil)
		repoMock.On("CreateMember", ctx, mock.Anything).Return(errors.Conflict("member already registered"))

		_, err := uc.Signup(ctx, signupRequest())
		assert.Equal(t, 409, errors.StatusCode(err))
		notifierMock.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
	})
}

func TestLogin(t *testing.T) {
	member := func(t *testing.T, status string) *entity.Member {
		return &entity.Member{
			PmaID:    "M03PMA",
			Email:    "rahim@example.com",
			Password: hashed(t, "secret123"),
			Type:     entity.MemberTypeRegular,
			Status:   status,
		}
	}

	t.Run("success", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindMemberByEmail", ctx, "rahim@example.com").Return(member(t, entity.MemberStatusActive), nil)
		repoMock.On("RecordLogin", ctx, "M03PMA").Return(nil)

		resp, err := uc.Login(ctx, &request.Login{Email: "rahim@example.com", Password: "secret123"})
		require.NoError(t, err)
		assert.Equal(t, "M03PMA", resp.PmaID)

		claims, err := signer.Parse(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "M03PMA", claims.Subject)
		repoMock.AssertCalled(t, "RecordLogin", ctx, "M03PMA")
	})

	t.Run("wrong password", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindMemberByEmail", ctx, "rahim@example.com").Return(member(t, entity.MemberStatusActive), nil)

		_, err := uc.Login(ctx, &request.Login{Email: "rahim@example.com", Password: "nope"})
		assert.Equal(t, 401, errors.StatusCode(err))
		repoMock.AssertNotCalled(t, "RecordLogin", mock.Anything, mock.Anything)
	})

	t.Run("unknown email", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindMemberByEmail", ctx, "ghost@example.com").Return(nil, nil)

		_, err := uc.Login(ctx, &request.Login{Email: "ghost@example.com", Password: "secret123"})
		assert.Equal(t, 401, errors.StatusCode(err))
		assert.Equal(t, "invalid credentials", errors.Message(err))
	})

	t.Run("inactive member", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindMemberByEmail", ctx, "rahim@example.com").Return(member(t, "Suspended"), nil)

		_, err := uc.Login(ctx, &request.Login{Email: "rahim@example.com", Password: "secret123"})
		assert.Equal(t, 403, errors.StatusCode(err))
	})
}

func TestLogout(t *testing.T) {
	setup()
	defer teardown()

	repoMock.On("RecordLogout", ctx, "M03PMA").Return(nil)

	assert.NoError(t, uc.Logout(ctx, "M03PMA"))
	assert.NoError(t, uc.Logout(ctx, ""))
	repoMock.AssertNumberOfCalls(t, "RecordLogout", 1)
}
