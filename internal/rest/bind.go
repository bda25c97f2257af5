package rest

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/daniilsolovey/blog-portal/internal/blogportal"
	"github.com/labstack/echo/v4"
)

const imageField = "image"

// blogPayload is the JSON form of a blog write. category_id stays raw so that
// values which are not ids can clear the category.
type blogPayload struct {
	Title      *string         `json:"title"`
	Content    *string         `json:"content"`
	CategoryID json.RawMessage `json:"category_id"`
	Tags       *[]string       `json:"tags"`
	IsActive   *bool           `json:"is_active"`
}

// bindBlogInput reads a blog write from JSON, urlencoded or multipart bodies.
// The returned cleanup closes an uploaded image and must always be called.
func bindBlogInput(c echo.Context) (blogportal.BlogInput, func(), error) {
	noop := func() {}
	ctype := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(ctype, echo.MIMEMultipartForm) || strings.HasPrefix(ctype, echo.MIMEApplicationForm) {
		return bindBlogForm(c, strings.HasPrefix(ctype, echo.MIMEMultipartForm))
	}

	var p blogPayload
	if c.Request().ContentLength != 0 {
		if err := c.Echo().JSONSerializer.Deserialize(c, &p); err != nil {
			return blogportal.BlogInput{}, noop, echo.NewHTTPError(http.StatusBadRequest, "Invalid request body").SetInternal(err)
		}
	}

	in := blogportal.BlogInput{
		Title:    p.Title,
		Content:  p.Content,
		IsActive: p.IsActive,
	}
	if p.Tags != nil {
		in.Tags = *p.Tags
		if in.Tags == nil {
			in.Tags = []string{}
		}
	}
	if len(p.CategoryID) > 0 {
		in.CategoryID, in.ClearCategory = parseCategoryID(string(p.CategoryID))
	}

	return in, noop, nil
}

func bindBlogForm(c echo.Context, multipartBody bool) (blogportal.BlogInput, func(), error) {
	noop := func() {}
	if _, err := c.FormParams(); err != nil {
		return blogportal.BlogInput{}, noop, echo.NewHTTPError(http.StatusBadRequest, "Invalid form data").SetInternal(err)
	}
	form := c.Request().PostForm

	var in blogportal.BlogInput
	if v, ok := formValue(form, "title"); ok {
		in.Title = &v
	}
	if v, ok := formValue(form, "content"); ok {
		in.Content = &v
	}
	if v, ok := formValue(form, "category_id"); ok {
		in.CategoryID, in.ClearCategory = parseCategoryID(v)
	}
	if v, ok := formValue(form, "is_active"); ok {
		active, err := parseFormBool(v)
		if err != nil {
			return in, noop, echo.NewHTTPError(http.StatusBadRequest, "is_active must be a boolean")
		}
		in.IsActive = &active
	}

	tags, err := formTags(form["tags"])
	if err != nil {
		return in, noop, err
	}
	in.Tags = tags

	if !multipartBody {
		return in, noop, nil
	}

	upload, cleanup, err := formUpload(c, imageField)
	if err != nil {
		return in, noop, err
	}
	in.Image = upload

	return in, cleanup, nil
}

// formUpload opens an optional uploaded file. A missing file gives a nil upload.
func formUpload(c echo.Context, field string) (*blogportal.Upload, func(), error) {
	noop := func() {}
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, noop, nil
	} else if err != nil {
		return nil, noop, echo.NewHTTPError(http.StatusBadRequest, "Invalid file upload").SetInternal(err)
	}

	return openUpload(fh)
}

func openUpload(fh *multipart.FileHeader) (*blogportal.Upload, func(), error) {
	f, err := fh.Open()
	if err != nil {
		return nil, func() {}, err
	}

	return &blogportal.Upload{Filename: fh.Filename, Body: f}, func() { _ = f.Close() }, nil
}

func formValue(form url.Values, key string) (string, bool) {
	values, ok := form[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// formTags accepts repeated fields or a single JSON array string. Absent tags
// and a single blank value give nil, which leaves the tag set unchanged.
func formTags(values []string) ([]string, error) {
	if values == nil {
		return nil, nil
	}

	if len(values) == 1 {
		raw := strings.TrimSpace(values[0])
		if raw == "" {
			return nil, nil
		}
		if strings.HasPrefix(raw, "[") {
			tags := []string{}
			if err := json.Unmarshal([]byte(raw), &tags); err != nil {
				return nil, echo.NewHTTPError(http.StatusBadRequest, "tags must be a list of strings").SetInternal(err)
			}
			return tags, nil
		}
	}

	tags := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			tags = append(tags, v)
		}
	}

	return tags, nil
}

// parseCategoryID returns the id, or clear=true when raw is null, empty or not an id.
func parseCategoryID(raw string) (*int, bool) {
	raw = strings.Trim(strings.TrimSpace(raw), `"`)
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return nil, true
	}
	return &id, false
}

func parseFormBool(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	return strconv.ParseBool(strings.TrimSpace(v))
}
