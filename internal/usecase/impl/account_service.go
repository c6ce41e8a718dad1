// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"crewdesk/config"
	deliverycontext "crewdesk/internal/delivery/context"
	"crewdesk/internal/domain/entity"
	domainerrors "crewdesk/internal/domain/errors"
	"crewdesk/internal/domain/repository"
	"crewdesk/internal/domain/service"
	"crewdesk/internal/usecase"
)

const (
	otpTTL        = 5 * time.Minute
	resetTokenTTL = 30 * time.Minute
	pendingTTL    = 15 * time.Minute
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	users     repository.UserRepository
	employees repository.EmployeeRepository
	sessions  service.SessionService
	mailer    service.MailSender
	cfg       *config.Config
	logger    *slog.Logger

	// now and newOtp are swappable for tests.
	now    func() time.Time
	newOtp func() string
}

// NewAccountService is the constructor for accountService.
func NewAccountService(
	users repository.UserRepository,
	employees repository.EmployeeRepository,
	sessions service.SessionService,
	mailer service.MailSender,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		users:     users,
		employees: employees,
		sessions:  sessions,
		mailer:    mailer,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
		newOtp:    generateOtp,
	}
}

// generateOtp returns a 6-digit code in [100000, 999999].
func generateOtp() string {
	return fmt.Sprintf("%d", rand.IntN(900000)+100000)
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup registers a new unverified account and emails its OTP.
func (srv *accountService) Signup(ctx context.Context, input usecase.SignupInput) (*usecase.SignupOutput, error) {
	existing, err := srv.users.GetByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.NewStorageError(err, "look up account by email")
	}

	otp := srv.newOtp()
	expiry := srv.now().Add(otpTTL)

	switch {
	case existing == nil:
		user := &entity.User{
			Name:      input.Name,
			Email:     input.Email,
			Password:  input.Password,
			Otp:       otp,
			OtpExpiry: &expiry,
		}
		if err := srv.users.Add(ctx, user); err != nil {
			return nil, domainerrors.NewStorageError(err, "create account")
		}

	case existing.IsEmailVerified:
		return nil, domainerrors.ErrEmailExists

	default:
		// An unverified signup with the same email is replaced wholesale
		// and its OTP reissued.
		existing.Name = input.Name
		existing.Password = input.Password
		existing.Otp = otp
		existing.OtpExpiry = &expiry
		if err := srv.users.Update(ctx, existing); err != nil {
			return nil, domainerrors.NewStorageError(err, "overwrite unverified account")
		}
	}

	srv.sendOtpMail(ctx, input.Email, otp)

	pendingToken, err := srv.sessions.IssuePending(service.PurposeVerifyEmail, input.Email, pendingTTL)
	if err != nil {
		return nil, errors.Wrap(err, "issue pending verification token")
	}

	srv.log(ctx).Info("signup pending verification", slog.String("email", input.Email))

	return &usecase.SignupOutput{Email: input.Email, PendingToken: pendingToken}, nil
}

// VerifyEmail checks the OTP for the pending signup and opens a session.
func (srv *accountService) VerifyEmail(ctx context.Context, input usecase.VerifyEmailInput) (*usecase.SessionOutput, error) {
	email, err := srv.sessions.ParsePending(service.PurposeVerifyEmail, input.PendingToken)
	if err != nil {
		return nil, domainerrors.ErrVerificationRequired
	}

	user, err := srv.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrVerificationRequired
		}

		return nil, domainerrors.NewStorageError(err, "look up pending account")
	}

	if !user.OtpValid(input.Otp, srv.now()) {
		return nil, domainerrors.ErrInvalidOtp
	}

	user.ClearOtp()
	user.IsEmailVerified = true
	if err := srv.users.Update(ctx, user); err != nil {
		return nil, domainerrors.NewStorageError(err, "mark account verified")
	}

	srv.mirrorEmployee(ctx, user)

	return srv.openSession(user)
}

// mirrorEmployee copies a freshly verified user into the employee
// directory when no employee has that email. Best effort: the two
// records are not kept in sync afterwards.
func (srv *accountService) mirrorEmployee(ctx context.Context, user *entity.User) {
	_, err := srv.employees.GetByEmail(ctx, user.Email)
	if err == nil {
		return
	}
	if !errors.Is(err, repository.ErrEmployeeNotFound) {
		srv.log(ctx).Error("employee mirror lookup failed", slog.Any("error", err))

		return
	}

	employee := &entity.Employee{
		Name:     user.Name,
		Email:    user.Email,
		Password: user.Password,
	}
	if err := srv.employees.Add(ctx, employee); err != nil {
		srv.log(ctx).Error("employee mirror create failed", slog.Any("error", err))
	}
}

// Login checks the credentials and opens a session.
func (srv *accountService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.SessionOutput, error) {
	user, err := srv.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, domainerrors.NewStorageError(err, "look up account by email")
	}

	// Cleartext comparison, reproducing the stored format.
	if user.Password != input.Password {
		return nil, domainerrors.ErrIncorrectPassword
	}

	srv.log(ctx).Info("login", slog.Int("user_id", user.ID))

	return srv.openSession(user)
}

// Authenticate verifies a session token and re-checks that its user
// still exists, forcing a sign-out for deleted accounts.
func (srv *accountService) Authenticate(ctx context.Context, sessionToken string) (*service.Identity, error) {
	identity, err := srv.sessions.ParseSession(sessionToken)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized
	}

	user, err := srv.users.GetByEmail(ctx, identity.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnauthorized
		}

		return nil, domainerrors.NewStorageError(err, "re-check session account")
	}

	// The id and name reflect the stored record, not stale claims.
	return &service.Identity{UserID: user.ID, Name: user.Name, Email: user.Email}, nil
}

// ForgotPassword issues a reset token and emails a reset link.
func (srv *accountService) ForgotPassword(ctx context.Context, input usecase.ForgotPasswordInput) error {
	user, err := srv.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrEmailNotFound
		}

		return domainerrors.NewStorageError(err, "look up account by email")
	}

	token := uuid.New().String()
	expiry := srv.now().Add(resetTokenTTL)
	user.Otp = token
	user.OtpExpiry = &expiry
	if err := srv.users.Update(ctx, user); err != nil {
		return domainerrors.NewStorageError(err, "store reset token")
	}

	link := fmt.Sprintf("%s/auth/reset-password?email=%s&token=%s", srv.cfg.BaseURL, user.Email, token)
	body := fmt.Sprintf(
		"<p>Hello %s,</p><p>Click <a href=%q>here</a> to reset your password. The link expires in 30 minutes.</p>",
		user.Name, link,
	)
	if err := srv.mailer.Send(ctx, user.Email, "Reset your password", body); err != nil {
		srv.log(ctx).Error("reset mail failed", slog.Any("error", err))
	}

	srv.log(ctx).Info("password reset issued", slog.Int("user_id", user.ID))

	return nil
}

// ResetPassword sets a new password when the reset token matches.
func (srv *accountService) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) error {
	user, err := srv.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrEmailNotFound
		}

		return domainerrors.NewStorageError(err, "look up account by email")
	}

	if !user.OtpValid(input.Token, srv.now()) {
		return domainerrors.ErrInvalidOtp
	}

	user.Password = input.Password
	user.ClearOtp()
	if err := srv.users.Update(ctx, user); err != nil {
		return domainerrors.NewStorageError(err, "store new password")
	}

	srv.log(ctx).Info("password reset completed", slog.Int("user_id", user.ID))

	return nil
}

func (srv *accountService) openSession(user *entity.User) (*usecase.SessionOutput, error) {
	identity := service.Identity{UserID: user.ID, Name: user.Name, Email: user.Email}
	token, err := srv.sessions.IssueSession(identity)
	if err != nil {
		return nil, errors.Wrap(err, "issue session token")
	}

	return &usecase.SessionOutput{Token: token, Identity: identity}, nil
}

func (srv *accountService) sendOtpMail(ctx context.Context, to, otp string) {
	body := fmt.Sprintf(
		"<p>Your verification code is <strong>%s</strong>. It expires in 5 minutes.</p>",
		otp,
	)
	if err := srv.mailer.Send(ctx, to, "Your OTP Code", body); err != nil {
		srv.log(ctx).Error("otp mail failed", slog.Any("error", err))
	}
}
