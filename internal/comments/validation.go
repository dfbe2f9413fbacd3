package comments

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	goerrors "github.com/goliatone/go-errors"
)

var fieldCodes = []struct {
	field string
	code  string
}{
	{field: "article_slug", code: CodeArticleSlugRequired},
	{field: "author_name", code: CodeAuthorNameInvalid},
	{field: "content", code: CodeContentInvalid},
}

// Normalize trims every field. The article slug is otherwise kept as sent
// so it matches the article lookup key exactly.
func (r CreateRequest) Normalize() CreateRequest {
	return CreateRequest{
		ArticleSlug: strings.TrimSpace(r.ArticleSlug),
		AuthorName:  strings.TrimSpace(r.AuthorName),
		Content:     strings.TrimSpace(r.Content),
	}
}

// Validate checks the trimmed request. Failures are go-errors validation
// errors whose text code names the first offending field.
func (r CreateRequest) Validate() error {
	req := r.Normalize()
	err := validation.ValidateStruct(&req,
		validation.Field(&req.ArticleSlug,
			validation.Required.Error("article slug is required"),
		),
		validation.Field(&req.AuthorName,
			validation.Required.Error("name must be at least 2 characters"),
			validation.RuneLength(MinAuthorNameLength, 0).Error("name must be at least 2 characters"),
		),
		validation.Field(&req.Content,
			validation.Required.Error("comment must be at least 3 characters"),
			validation.RuneLength(MinContentLength, MaxContentLength).Error("comment must be between 3 and 2000 characters"),
		),
	)
	if err == nil {
		return nil
	}

	var fields validation.Errors
	if !errors.As(err, &fields) {
		return goerrors.Wrap(err, goerrors.CategoryValidation, "invalid comment")
	}
	for _, fc := range fieldCodes {
		if fieldErr, ok := fields[fc.field]; ok && fieldErr != nil {
			return goerrors.Wrap(fields, goerrors.CategoryValidation, fieldErr.Error()).
				WithTextCode(fc.code)
		}
	}
	return goerrors.Wrap(fields, goerrors.CategoryValidation, "invalid comment")
}

// IsValidation reports whether err is a comment validation failure.
func IsValidation(err error) bool {
	return err != nil && goerrors.IsCategory(err, goerrors.CategoryValidation)
}

// FieldErrors returns the per-field messages carried by a validation error.
func FieldErrors(err error) map[string]string {
	var fields validation.Errors
	if !errors.As(err, &fields) {
		return nil
	}
	out := make(map[string]string, len(fields))
	for key, value := range fields {
		if value != nil {
			out[key] = value.Error()
		}
	}
	return out
}

// ErrorCode returns the text code attached to err, if any.
func ErrorCode(err error) string {
	var typed *goerrors.Error
	if errors.As(err, &typed) {
		return typed.TextCode
	}
	return ""
}
