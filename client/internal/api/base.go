package api

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	apierrors "github.com/nguyencmc/app-exam-test-online-sub002/client/internal/errors"
	"github.com/nguyencmc/app-exam-test-online-sub002/client/internal/rest"
	"github.com/nguyencmc/app-exam-test-online-sub002/client/internal/types"
)

// Every resource call goes through rest.Do, so the header, body and error
// rules of the pipeline hold for the typed API as well.

// errNullResource is reported when a single-resource endpoint answers 2xx
// with a JSON null.
var errNullResource = errors.New("response body holds no resource")

func get[T any](ctx context.Context, p *rest.Pipeline, endpoint string) (T, error) {
	return rest.Do[T](ctx, p, http.MethodGet, endpoint, nil)
}

func getOne[T any](ctx context.Context, p *rest.Pipeline, endpoint string) (*T, error) {
	return doOne[T](ctx, p, http.MethodGet, endpoint, nil)
}

// doOne decodes a single resource; a null body is a validation failure, so
// callers never see a nil result with a nil error.
func doOne[T any](ctx context.Context, p *rest.Pipeline, method, endpoint string, body any) (*T, error) {
	v, err := rest.Do[*T](ctx, p, method, endpoint, body)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, &apierrors.ValidationError{Endpoint: endpoint, Err: errNullResource}
	}
	return v, nil
}

// byID joins collection and an escaped id after checking the id is present.
func byID(collection, id, field string) (string, error) {
	if err := types.ValidateIDPresent(id, field); err != nil {
		return "", err
	}
	return collection + "/" + url.PathEscape(id), nil
}
