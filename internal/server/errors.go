package server

import (
	"net/http"

	"resumeai/internal/export"
	"resumeai/internal/generate"
	"resumeai/internal/genreq"
	"resumeai/internal/github"
	"resumeai/internal/input"
	"resumeai/internal/render"
	"resumeai/internal/schema"
	"resumeai/internal/store"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *input.ValidationError, *genreq.EmptyRequestError, *schema.ValidationError:
		return http.StatusBadRequest
	case *store.ErrGenerationInFlight:
		return http.StatusConflict
	case *render.ErrNoCoverLetter:
		return http.StatusNotFound
	case *generate.ServiceError, *generate.EmptyResponseError, *generate.ParseError, *github.FetchError:
		return http.StatusBadGateway
	case *render.Error, *export.ConversionError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
