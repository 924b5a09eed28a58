package middleware

import (
	"net/http"
	"strconv"

	"github.com/tutoragent/NotesAPI/internal/config"
	"github.com/tutoragent/NotesAPI/internal/handlers"
	"github.com/tutoragent/NotesAPI/internal/metrics"
	"github.com/tutoragent/NotesAPI/pkg/logger_i"
)

type requestResponseStruct struct {
	writer     http.ResponseWriter
	req        *http.Request
	badRequest failureStruct
	logger     *logger_i.Logger
}

type failureStruct struct {
	isBadRequest bool
	httpCode     int
	errorMessage string
}

var settings config.Settings

// Init hands the middleware the env-derived settings it authenticates with.
func Init(s config.Settings) {
	settings = s
}

var RootHandler = Wrap(handlers.RootHandler)
var HealthHandler = Wrap(handlers.HealthHandler)

var UploadHandler = Wrap(handlers.UploadHandler)
var QueryHandler = Wrap(handlers.QueryHandler)
var ListNotesHandler = Wrap(handlers.ListNotesHandler)
var DeleteNotesHandler = Wrap(handlers.DeleteNotesHandler)
var AddTutorHandler = Wrap(handlers.AddTutorHandler)
var AddPromptHandler = Wrap(handlers.AddPromptHandler)

func Wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &metrics.HttpStatusRecorder{ResponseWriter: w, Status: 200} //metrics
		re := processRequest(requestResponseStruct{req: r, writer: rec})

		// Rejected requests count too, with the status the reject wrote.
		if re.badRequest.isBadRequest {
			handleBadRequest(re)
		} else {
			next(rec, re.req)
		}

		metrics.HttpRequestsTotal.WithLabelValues(r.URL.Path, strconv.Itoa(rec.Status)).Inc() //metrics
	}
}

func processRequest(re requestResponseStruct) requestResponseStruct {
	re.logger = logger_i.NewLogger("middleware")
	re.logger.Info("New request received")
	re = injectTrace(re)
	re = authenticate(re)
	if re.badRequest.isBadRequest {
		return re //stop if auth fails
	}
	re = rateLimiter(re)

	return re
}
