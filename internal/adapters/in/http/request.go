package http

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/Keloce-2005/Back-office/internal/core/application/usecases/commands"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// bind decodes the request into req and runs its validate tags.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return c.Validate(req)
}

func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(c.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

// queryParam binds a form style query parameter into dest. Optional
// parameters need a pointer to a pointer and leave it nil when absent.
func queryParam(c echo.Context, name string, required bool, dest any) error {
	if err := runtime.BindQueryParameter("form", true, required, name, c.QueryParams(), dest); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return nil
}

// queryUUID binds an optional identifier from the query string.
func queryUUID(c echo.Context, name string) (*kernel.UUID, error) {
	var raw *uuid.UUID
	if err := queryParam(c, name, false, &raw); err != nil {
		return nil, err
	}
	id, err := kernel.UUIDPtrFromBytes(raw)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

// optionalUUID parses s unless it is empty.
func optionalUUID(name, s string) (*kernel.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(s)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return &id, nil
}

// formUpload opens a multipart file. A missing field yields nil. The caller
// closes the returned file.
func formUpload(c echo.Context, field string) (*commands.Upload, multipart.File, error) {
	header, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, errs.NewValueIsInvalidErrorWithCause(field, err)
	}

	file, err := header.Open()
	if err != nil {
		return nil, nil, errs.NewValueIsInvalidErrorWithCause(field, err)
	}

	return &commands.Upload{
		FileName:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Body:        file,
	}, file, nil
}

func closeAll(files ...multipart.File) {
	for _, f := range files {
		if f != nil {
			_ = f.Close()
		}
	}
}

// optionalMoney parses a decimal string; empty means zero.
func optionalMoney(s string) (kernel.Money, error) {
	if s == "" {
		return kernel.ZeroMoney(), nil
	}
	return kernel.MoneyFromString(s)
}
