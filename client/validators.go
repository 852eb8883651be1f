package client

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/sinergiai/sinergi/core"
	"github.com/sinergiai/sinergi/core/session"
)

var (
	knownRoleTag  = "knownrole"
	knownRoleText = "invalid role"

	// password policy; applied locally before an account request is sent,
	// the backend has the final say
	pwdMinLen     = 8
	pwdMinLenTag  = "pwdminlen"
	pwdMinLenText = fmt.Sprintf("password must contain at least %d characters", pwdMinLen)

	pwdNoSpaceTag  = "pwdnospace"
	pwdNoSpaceText = "password must not contain whitespace"

	pwdNotAllNumTag  = "pwdnotallnum"
	pwdNotAllNumText = "password cannot be entirely numeric"

	pwdMaxSim      = .7
	pwdAttrSimTag  = "pwdtoosim"
	pwdAttrSimText = "password cannot be similar to user attributes"
)

// knownRoles is a sorted copy of session.AllRoles; the shared slice keeps
// its declared order.
var knownRoles []string

func init() {
	knownRoles = append([]string(nil), session.AllRoles...)
	sort.Strings(knownRoles)

	// register validators
	_ = core.Validate.RegisterValidation(knownRoleTag, knownRoleValidation)
	core.RegisterCustomTranslation(knownRoleTag, knownRoleText)

	core.Validate.RegisterStructValidation(accountStructValidation, RegisterInput{})
	core.Validate.RegisterStructValidation(accountStructValidation, NewUserInput{})
	core.Validate.RegisterStructValidation(accountStructValidation, UpdateUserInput{})
	core.RegisterCustomTranslation(pwdMinLenTag, pwdMinLenText)
	core.RegisterCustomTranslation(pwdNoSpaceTag, pwdNoSpaceText)
	core.RegisterCustomTranslation(pwdNotAllNumTag, pwdNotAllNumText)
	core.RegisterCustomTranslation(pwdAttrSimTag, pwdAttrSimText)
}

// ValidateInput runs struct validation on an input payload and translates
// failures into a core.ValidationError. The gateway itself never calls
// this; callers validate before building a request.
func ValidateInput(in interface{}) error {
	return core.TranslateError(core.Validate.Struct(in))
}

// Custom Validators

// knownRoleValidation checks the role against the roles the backend knows.
func knownRoleValidation(fl validator.FieldLevel) bool {
	role := fl.Field().String()
	if idx := sort.SearchStrings(knownRoles, role); idx < len(knownRoles) {
		return knownRoles[idx] == role
	}
	return false
}

// accountStructValidation does struct level validation on the account
// payloads.
func accountStructValidation(sl validator.StructLevel) {
	switch in := sl.Current().Interface().(type) {
	case RegisterInput:
		validatePassword(in.Password, in.NamaLengkap, in.Email, sl)
	case NewUserInput:
		validatePassword(in.Password, in.NamaLengkap, in.Email, sl)
		validateRoleSekolah(in.Role, in.SekolahID, sl)
	case UpdateUserInput:
		if in.Password != "" {
			validatePassword(in.Password, in.NamaLengkap, in.Email, sl)
		}
	}
}

// validateRoleSekolah mirrors the backend rule: Admin and Guru accounts must
// belong to a sekolah.
func validateRoleSekolah(role string, sekolahID *int, sl validator.StructLevel) {
	if (role == session.RoleAdmin || role == session.RoleGuru) && sekolahID == nil {
		sl.ReportError(sekolahID, "sekolah_id", "SekolahID", "required_with", "")
	}
}

// validatePassword applies the password policy to provided password:
// - minLen: 8
// - no whitespace
// - no all numeric
// - no user attrs similarity
func validatePassword(pwd, name, email string, sl validator.StructLevel) {
	reportErr := func(tag string) {
		sl.ReportError(pwd, "password", "Password", tag, "")
	}

	var digitCount int

	// - minLen: 8
	pwdLen := len(pwd)
	if pwdLen < pwdMinLen {
		reportErr(pwdMinLenTag)
		return
	}
	for _, char := range []rune(pwd) {
		// - no whitespace
		if unicode.IsSpace(char) {
			reportErr(pwdNoSpaceTag)
			return
		}
		if unicode.IsDigit(char) {
			digitCount++
		}
	}

	// - not all numeric
	if digitCount == pwdLen {
		reportErr(pwdNotAllNumTag)
		return
	}

	// - no user attrs similarity
	getRatio := func(pass, usrAttr string) float64 {
		if usrAttr == "" {
			return 0
		}
		return difflib.NewMatcher(strings.Split(pass, ""), strings.Split(usrAttr, "")).QuickRatio()
	}
	if getRatio(pwd, name) >= pwdMaxSim || getRatio(pwd, email) >= pwdMaxSim {
		reportErr(pwdAttrSimTag)
		return
	}
}
