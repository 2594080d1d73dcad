// Package schema validates raw request payloads against per-operation
// schemas. Validation stops at the first violated rule and reports the
// offending field, the rule name and a human readable message.
package schema

import (
	"fmt"
	"time"

	"github.com/tabelsky/todo-flask-netology/internal/models"
)

const (
	PasswordMinLength = 8
	PasswordMaxLength = 32
)

// FieldError describes the first rule a payload violated.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Msg   string `json:"msg"`
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func requiredString(raw map[string]any, field string) (string, *FieldError) {
	v, ok := raw[field]
	if !ok || v == nil {
		return "", &FieldError{Field: field, Rule: "required", Msg: "field required"}
	}
	s, ok := v.(string)
	if !ok {
		return "", &FieldError{Field: field, Rule: "type", Msg: "string expected"}
	}
	return s, nil
}

func optionalString(raw map[string]any, field string) (*string, *FieldError) {
	v, ok := raw[field]
	if !ok || v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, &FieldError{Field: field, Rule: "type", Msg: "string expected"}
	}
	return &s, nil
}

func requiredBool(raw map[string]any, field string) (bool, *FieldError) {
	v, ok := raw[field]
	if !ok || v == nil {
		return false, &FieldError{Field: field, Rule: "required", Msg: "field required"}
	}
	b, ok := v.(bool)
	if !ok {
		return false, &FieldError{Field: field, Rule: "type", Msg: "boolean expected"}
	}
	return b, nil
}

func optionalBool(raw map[string]any, field string) (*bool, *FieldError) {
	v, ok := raw[field]
	if !ok || v == nil {
		return nil, nil
	}
	b, ok := v.(bool)
	if !ok {
		return nil, &FieldError{Field: field, Rule: "type", Msg: "boolean expected"}
	}
	return &b, nil
}

// checkPassword enforces the password policy: length within
// [PasswordMinLength, PasswordMaxLength], at least one lowercase and
// one uppercase letter.
func checkPassword(password string) *FieldError {
	if len(password) < PasswordMinLength {
		return &FieldError{
			Field: "password",
			Rule:  "min_length",
			Msg:   fmt.Sprintf("minimal length of password is %d", PasswordMinLength),
		}
	}
	if len(password) > PasswordMaxLength {
		return &FieldError{
			Field: "password",
			Rule:  "max_length",
			Msg:   fmt.Sprintf("maximal length of password is %d", PasswordMaxLength),
		}
	}
	var hasLower, hasUpper bool
	for _, ch := range password {
		switch {
		case ch >= 'a' && ch <= 'z':
			hasLower = true
		case ch >= 'A' && ch <= 'Z':
			hasUpper = true
		}
	}
	if !hasLower {
		return &FieldError{
			Field: "password",
			Rule:  "lowercase",
			Msg:   "password must contain lowercase characters",
		}
	}
	if !hasUpper {
		return &FieldError{
			Field: "password",
			Rule:  "uppercase",
			Msg:   "password must contain uppercase characters",
		}
	}
	return nil
}

// Login is the normalized payload for POST /login.
type Login struct {
	Name     string
	Password string
}

func ValidateLogin(raw map[string]any) (*Login, *FieldError) {
	name, ferr := requiredString(raw, "name")
	if ferr != nil {
		return nil, ferr
	}
	password, ferr := requiredString(raw, "password")
	if ferr != nil {
		return nil, ferr
	}
	return &Login{Name: name, Password: password}, nil
}

// CreateUser is the normalized payload for POST /user. The password is
// still plaintext here; hashing happens at the handler boundary.
type CreateUser struct {
	Name     string
	Password string
}

func ValidateCreateUser(raw map[string]any) (*CreateUser, *FieldError) {
	name, ferr := requiredString(raw, "name")
	if ferr != nil {
		return nil, ferr
	}
	password, ferr := requiredString(raw, "password")
	if ferr != nil {
		return nil, ferr
	}
	if ferr := checkPassword(password); ferr != nil {
		return nil, ferr
	}
	return &CreateUser{Name: name, Password: password}, nil
}

// UserPatch is the normalized partial payload for PATCH /user. Nil
// fields were not present in the request.
type UserPatch struct {
	Name     *string
	Password *string
}

func ValidateUserPatch(raw map[string]any) (*UserPatch, *FieldError) {
	name, ferr := optionalString(raw, "name")
	if ferr != nil {
		return nil, ferr
	}
	password, ferr := optionalString(raw, "password")
	if ferr != nil {
		return nil, ferr
	}
	if password != nil {
		if ferr := checkPassword(*password); ferr != nil {
			return nil, ferr
		}
	}
	return &UserPatch{Name: name, Password: password}, nil
}

// Apply copies the present fields onto the user. Password must already
// be a hash at this point.
func (p *UserPatch) Apply(u *models.User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Password != nil {
		u.Password = *p.Password
	}
}

// CreateTodo is the normalized payload for POST /todo.
type CreateTodo struct {
	Name      string
	Important bool
}

func ValidateCreateTodo(raw map[string]any) (*CreateTodo, *FieldError) {
	name, ferr := requiredString(raw, "name")
	if ferr != nil {
		return nil, ferr
	}
	if name == "" {
		return nil, &FieldError{Field: "name", Rule: "required", Msg: "field required"}
	}
	important, ferr := requiredBool(raw, "important")
	if ferr != nil {
		return nil, ferr
	}
	return &CreateTodo{Name: name, Important: important}, nil
}

// TodoPatch is the normalized partial payload for PATCH /todo/{id}.
type TodoPatch struct {
	Name      *string
	Important *bool
	Done      *bool
}

func ValidateTodoPatch(raw map[string]any) (*TodoPatch, *FieldError) {
	name, ferr := optionalString(raw, "name")
	if ferr != nil {
		return nil, ferr
	}
	important, ferr := optionalBool(raw, "important")
	if ferr != nil {
		return nil, ferr
	}
	done, ferr := optionalBool(raw, "done")
	if ferr != nil {
		return nil, ferr
	}
	return &TodoPatch{Name: name, Important: important, Done: done}, nil
}

// Apply copies the present fields onto the todo. FinishTime is set
// exactly once, when done first transitions to true; unsetting done
// later leaves it untouched.
func (p *TodoPatch) Apply(t *models.Todo) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Important != nil {
		t.Important = *p.Important
	}
	if p.Done != nil {
		if *p.Done && !t.Done && t.FinishTime == nil {
			now := time.Now()
			t.FinishTime = &now
		}
		t.Done = *p.Done
	}
}
