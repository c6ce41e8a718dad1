package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"

	deliverycontext "crewdesk/internal/delivery/context"
	"crewdesk/internal/domain/entity"
	domainerrors "crewdesk/internal/domain/errors"
	"crewdesk/internal/domain/repository"
	"crewdesk/internal/domain/service"
	"crewdesk/internal/usecase"
)

// pendingUser is the payload carried inside the pending-user token while
// the OTP for an admin-created user is in flight. Nothing is persisted
// until the OTP is confirmed.
type pendingUser struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Otp       string    `json:"otp"`
	OtpExpiry time.Time `json:"otpExpiry"`
}

// userService implements the UserUsecase interface.
type userService struct {
	users    repository.UserRepository
	sessions service.SessionService
	mailer   service.MailSender
	logger   *slog.Logger

	now    func() time.Time
	newOtp func() string
}

// NewUserService is the constructor for userService.
func NewUserService(
	users repository.UserRepository,
	sessions service.SessionService,
	mailer service.MailSender,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		users:    users,
		sessions: sessions,
		mailer:   mailer,
		logger:   logger,
		now:      time.Now,
		newOtp:   generateOtp,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *userService) List(ctx context.Context) ([]entity.User, error) {
	users, err := srv.users.GetAll(ctx)
	if err != nil {
		return nil, domainerrors.NewStorageError(err, "list users")
	}

	return users, nil
}

func (srv *userService) Get(ctx context.Context, id int) (*entity.User, error) {
	user, err := srv.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.NewStorageError(err, "get user")
	}

	return user, nil
}

// BeginCreate emails an OTP to the new address and returns a signed
// token holding the not-yet-persisted user.
func (srv *userService) BeginCreate(ctx context.Context, input usecase.CreateUserInput) (*usecase.BeginCreateOutput, error) {
	if _, err := srv.users.GetByEmail(ctx, input.Email); err == nil {
		return nil, domainerrors.ErrEmailExists
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.NewStorageError(err, "look up user by email")
	}

	pending := pendingUser{
		Name:      input.Name,
		Email:     input.Email,
		Password:  input.Password,
		Otp:       srv.newOtp(),
		OtpExpiry: srv.now().Add(otpTTL),
	}
	payload, err := json.Marshal(pending)
	if err != nil {
		return nil, errors.Wrap(err, "encode pending user")
	}

	token, err := srv.sessions.IssuePending(service.PurposeUserCreate, string(payload), pendingTTL)
	if err != nil {
		return nil, errors.Wrap(err, "issue pending user token")
	}

	body := fmt.Sprintf(
		"<p>Your verification code is <strong>%s</strong>. It expires in 5 minutes.</p>",
		pending.Otp,
	)
	if err := srv.mailer.Send(ctx, pending.Email, "Your OTP Code", body); err != nil {
		srv.log(ctx).Error("otp mail failed", slog.Any("error", err))
	}

	srv.log(ctx).Info("user creation pending otp", slog.String("email", pending.Email))

	return &usecase.BeginCreateOutput{Email: pending.Email, PendingToken: token}, nil
}

// ConfirmCreate checks the OTP against the pending token and persists
// the user, already verified.
func (srv *userService) ConfirmCreate(ctx context.Context, input usecase.ConfirmUserInput) (*entity.User, error) {
	payload, err := srv.sessions.ParsePending(service.PurposeUserCreate, input.PendingToken)
	if err != nil {
		return nil, domainerrors.ErrVerificationRequired
	}

	var pending pendingUser
	if err := json.Unmarshal([]byte(payload), &pending); err != nil {
		return nil, domainerrors.ErrVerificationRequired
	}

	if pending.Otp != input.Otp || !pending.OtpExpiry.After(srv.now()) {
		return nil, domainerrors.ErrInvalidOtp
	}

	user := &entity.User{
		Name:            pending.Name,
		Email:           pending.Email,
		Password:        pending.Password,
		IsEmailVerified: true,
	}
	if err := srv.users.Add(ctx, user); err != nil {
		return nil, domainerrors.NewStorageError(err, "create user")
	}

	srv.log(ctx).Info("user created", slog.Int("user_id", user.ID))

	return user, nil
}

func (srv *userService) Update(ctx context.Context, id int, input usecase.UpdateUserInput) (*entity.User, error) {
	existing, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.Email = input.Email
	existing.Password = input.Password
	if err := srv.users.Update(ctx, existing); err != nil {
		return nil, domainerrors.NewStorageError(err, "update user")
	}

	return existing, nil
}

func (srv *userService) Delete(ctx context.Context, id int) error {
	if _, err := srv.Get(ctx, id); err != nil {
		return err
	}
	if err := srv.users.Delete(ctx, id); err != nil {
		return domainerrors.NewStorageError(err, "delete user")
	}

	srv.log(ctx).Info("user deleted", slog.Int("user_id", id))

	return nil
}
