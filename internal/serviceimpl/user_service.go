package serviceimpl

import (
	"errors"
	"fmt"
	"net/mail"
	"strconv"

	"github.com/openhire/go-jobboard/apperrors"
	"github.com/openhire/go-jobboard/internal/auth"
	"github.com/openhire/go-jobboard/internal/querybuilder"
	"github.com/openhire/go-jobboard/models"
	"github.com/openhire/go-jobboard/request"
	"github.com/openhire/go-jobboard/response"
	"gorm.io/gorm"
)

type userService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *userService {
	return &userService{DB: db}
}

var userColNames = map[string]string{
	"firstName": "first_name",
	"lastName":  "last_name",
	"isAdmin":   "is_admin",
}

// Users have no filter vocabulary; the listing is always the full set.
var userFilters = querybuilder.Vocabulary{}

const userProjection = `username, first_name AS "firstName", last_name AS "lastName", email, is_admin AS "isAdmin"`

var userBaseQuery = querybuilder.BaseQuery{
	Select:  `SELECT ` + userProjection + ` FROM users`,
	OrderBy: "username",
}

func (s *userService) RegisterUser(req request.RegisterUserRequest) (*response.User, error) {
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, apperrors.NewValidationError("email", "invalid email format")
	}

	var count int64
	if err := s.DB.Model(&models.User{}).Where("username = ?", req.Username).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if count > 0 {
		return nil, apperrors.NewAlreadyExistsError("user", req.Username)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:  req.Username,
		Password:  hash,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		IsAdmin:   req.IsAdmin,
	}
	if err := s.DB.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return userResponse(user), nil
}

func (s *userService) GetUsers() ([]response.User, error) {
	stmt, values, err := querybuilder.BuildFilterQuery(userBaseQuery, userFilters, nil)
	if err != nil {
		return nil, err
	}

	var users []response.User
	if err := s.DB.Raw(stmt, values...).Scan(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}

func (s *userService) GetUser(username string) (*response.User, error) {
	user, err := s.findUser(username)
	if err != nil {
		return nil, err
	}

	var jobIDs []int64
	if err := s.DB.Model(&models.Application{}).
		Where("username = ?", username).
		Order("job_id").
		Pluck("job_id", &jobIDs).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch applications: %w", err)
	}

	resp := userResponse(user)
	resp.Applications = jobIDs
	return resp, nil
}

func (s *userService) UpdateUser(username string, req request.UpdateUserRequest) (*response.User, error) {
	updates := req.UpdateMap()
	if plaintext, ok := updates["password"]; ok {
		hash, err := auth.HashPassword(plaintext.(string))
		if err != nil {
			return nil, err
		}
		updates["password"] = hash
	}

	assignments, values, err := querybuilder.BuildPartialUpdate(updates, userColNames)
	if err != nil {
		return nil, err
	}

	stmt := fmt.Sprintf(`UPDATE users SET %s WHERE username = $%d RETURNING %s`,
		assignments, len(values)+1, userProjection)
	values = append(values, username)

	var user response.User
	result := s.DB.Raw(stmt, values...).Scan(&user)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.NewNotFoundError("user", username)
	}
	return &user, nil
}

func (s *userService) DeleteUser(username string) error {
	result := s.DB.Delete(&models.User{}, "username = ?", username)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("user", username)
	}
	return nil
}

func (s *userService) Authenticate(req request.AuthenticateRequest) (*response.User, error) {
	var user models.User
	if err := s.DB.First(&user, "username = ?", req.Username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("invalid username/password: %w", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	if err := auth.CheckPassword(user.Password, req.Password); err != nil {
		return nil, fmt.Errorf("invalid username/password: %w", err)
	}
	return userResponse(&user), nil
}

func (s *userService) ApplyToJob(username string, jobID int64) (int64, error) {
	user, err := s.findUser(username)
	if err != nil {
		return 0, err
	}

	var jobCount int64
	if err := s.DB.Model(&models.Job{}).Where("id = ?", jobID).Count(&jobCount).Error; err != nil {
		return 0, fmt.Errorf("failed to check job: %w", err)
	}
	if jobCount == 0 {
		return 0, apperrors.NewNotFoundError("job", strconv.FormatInt(jobID, 10))
	}

	var appCount int64
	if err := s.DB.Model(&models.Application{}).
		Where("username = ? AND job_id = ?", username, jobID).
		Count(&appCount).Error; err != nil {
		return 0, fmt.Errorf("failed to check application: %w", err)
	}
	if appCount > 0 {
		return 0, apperrors.NewAlreadyExistsError("application", fmt.Sprintf("%s/%d", username, jobID))
	}

	application := &models.Application{Username: user.Username, JobID: jobID}
	if err := s.DB.Create(application).Error; err != nil {
		return 0, fmt.Errorf("failed to create application: %w", err)
	}
	return jobID, nil
}

func (s *userService) findUser(username string) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("user", username)
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}

func userResponse(u *models.User) *response.User {
	return &response.User{
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
	}
}
