package services

import (
	"fmt"

	"github.com/PrVille/json-mock-data-api-sub000/internal/models"
	"github.com/PrVille/json-mock-data-api-sub000/internal/types"
	"github.com/PrVille/json-mock-data-api-sub000/internal/validate"
	"gorm.io/gorm"
)

// CreateUserInput is the request body for creating a user.
type CreateUserInput struct {
	Username  string          `json:"username"`
	Email     string          `json:"email"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Age       *types.FlexInt  `json:"age"`
	Image     *string         `json:"image"`
	Job       *string         `json:"job"`
	Bio       *string         `json:"bio"`
	Country   *string         `json:"country"`
	Height    *float64        `json:"height"`
	Weight    *float64        `json:"weight"`
}

// UpdateUserInput is the request body for a partial user update. Absent
// fields are left unchanged.
type UpdateUserInput struct {
	Username  *string        `json:"username"`
	Email     *string        `json:"email"`
	FirstName *string        `json:"firstName"`
	LastName  *string        `json:"lastName"`
	Age       *types.FlexInt `json:"age"`
	Image     *string        `json:"image"`
	Job       *string        `json:"job"`
	Bio       *string        `json:"bio"`
	Country   *string        `json:"country"`
	Height    *float64       `json:"height"`
	Weight    *float64       `json:"weight"`
}

// UserListResult is the list envelope for users.
type UserListResult struct {
	Data  []models.PublicUser `json:"data"`
	Total int64               `json:"total"`
	Skip  int                 `json:"skip"`
	Take  int                 `json:"take"`
}

// ListUsers returns a tenant-scoped page of users. Total counts the whole
// scope, not the window.
func ListUsers(db *gorm.DB, caller types.CallerContext, p ListParams) (*UserListResult, error) {
	var total int64
	if err := scopedUsers(db, caller).Count(&total).Error; err != nil {
		return nil, err
	}

	var users []models.User
	if err := scopedUsers(db, caller).
		Order(p.order()).
		Offset(p.Skip).
		Limit(p.Take).
		Find(&users).Error; err != nil {
		return nil, err
	}

	data := make([]models.PublicUser, 0, len(users))
	for _, u := range users {
		data = append(data, u.Public())
	}

	return &UserListResult{Data: data, Total: total, Skip: p.Skip, Take: p.Take}, nil
}

// GetUserByID returns the scoped user or a field error on the id param.
func GetUserByID(db *gorm.DB, caller types.CallerContext, id string) (*models.PublicUser, error) {
	user, err := findScopedUser(db, caller, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, userNotFound(id)
	}
	pub := user.Public()
	return &pub, nil
}

// CreateUser validates the input against the caller's scope and then either
// persists the user or, for the default tenant, fabricates the response.
func CreateUser(db *gorm.DB, caller types.CallerContext, in CreateUserInput) (*models.PublicUser, error) {
	v := validate.New()
	v.RequireString("username", in.Username)
	v.RequireString("email", in.Email)
	v.Email("email", in.Email)
	v.RequireString("firstName", in.FirstName)
	v.RequireString("lastName", in.LastName)

	if in.Username != "" {
		taken, err := usernameInUse(db, caller, in.Username, "")
		if err != nil {
			return nil, err
		}
		if taken {
			v.Add("username", "Username already in use.", in.Username)
		}
	}
	if in.Email != "" {
		taken, err := userEmailInUse(db, caller, in.Email, "")
		if err != nil {
			return nil, err
		}
		if taken {
			v.Add("email", "Email already in use.", in.Email)
		}
	}

	if err := v.Err(); err != nil {
		return nil, err
	}

	id, now := stampNew()
	user := models.User{
		ID:           id,
		Username:     in.Username,
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Image:        in.Image,
		Job:          in.Job,
		Bio:          in.Bio,
		Country:      in.Country,
		Height:       in.Height,
		Weight:       in.Weight,
		ApiAccountID: caller.TenantID,
	}
	if in.Age != nil {
		age := in.Age.Int()
		user.Age = &age
	}

	if mocked(caller) {
		user.CreatedAt = now
		user.UpdatedAt = now
		pub := user.Public()
		return &pub, nil
	}

	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	pub := user.Public()
	return &pub, nil
}

// UpdateUser applies a partial update. Uniqueness is re-checked only for
// fields actually changing.
func UpdateUser(db *gorm.DB, caller types.CallerContext, id string, in UpdateUserInput) (*models.PublicUser, error) {
	user, err := findScopedUser(db, caller, id)
	if err != nil {
		return nil, err
	}

	v := validate.New()
	if user == nil {
		v.AddAt(types.LocationParams, "id", fmt.Sprintf("User with id %q does not exist.", id), id)
	}

	if in.Username != nil {
		v.RequireString("username", *in.Username)
		if user != nil && *in.Username != "" && *in.Username != user.Username {
			taken, err := usernameInUse(db, caller, *in.Username, user.ID)
			if err != nil {
				return nil, err
			}
			if taken {
				v.Add("username", "Username already in use.", *in.Username)
			}
		}
	}
	if in.Email != nil {
		v.RequireString("email", *in.Email)
		v.Email("email", *in.Email)
		if user != nil && *in.Email != "" && *in.Email != user.Email {
			taken, err := userEmailInUse(db, caller, *in.Email, user.ID)
			if err != nil {
				return nil, err
			}
			if taken {
				v.Add("email", "Email already in use.", *in.Email)
			}
		}
	}
	if in.FirstName != nil {
		v.RequireString("firstName", *in.FirstName)
	}
	if in.LastName != nil {
		v.RequireString("lastName", *in.LastName)
	}

	if err := v.Err(); err != nil {
		return nil, err
	}

	if in.Username != nil {
		user.Username = *in.Username
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Age != nil {
		age := in.Age.Int()
		user.Age = &age
	}
	if in.Image != nil {
		user.Image = in.Image
	}
	if in.Job != nil {
		user.Job = in.Job
	}
	if in.Bio != nil {
		user.Bio = in.Bio
	}
	if in.Country != nil {
		user.Country = in.Country
	}
	if in.Height != nil {
		user.Height = in.Height
	}
	if in.Weight != nil {
		user.Weight = in.Weight
	}

	if mocked(caller) {
		_, now := stampNew()
		user.UpdatedAt = now
		pub := user.Public()
		return &pub, nil
	}

	if err := db.Save(user).Error; err != nil {
		return nil, err
	}
	pub := user.Public()
	return &pub, nil
}

// DeleteUser removes the scoped user. On the live path the store cascade
// also removes the user's posts and comments; the mock path echoes the
// record untouched.
func DeleteUser(db *gorm.DB, caller types.CallerContext, id string) (*models.PublicUser, error) {
	user, err := findScopedUser(db, caller, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, userNotFound(id)
	}

	pub := user.Public()
	if mocked(caller) {
		return &pub, nil
	}

	if err := db.Delete(user).Error; err != nil {
		return nil, err
	}
	return &pub, nil
}

func userNotFound(id string) error {
	return &types.ValidationError{Errors: []types.FieldError{{
		Type:     "field",
		Value:    id,
		Msg:      fmt.Sprintf("User with id %q does not exist.", id),
		Path:     "id",
		Location: types.LocationParams,
	}}}
}
