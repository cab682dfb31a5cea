package server

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/classify"
	"github.com/jonathan/resume-analyzer/internal/extract"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// AnalyzeResponse is the analyze endpoint payload: an ephemeral id plus
// the analysis result fields, flattened.
type AnalyzeResponse struct {
	ID string `json:"id"`
	*types.AnalysisResult
}

// handleAnalyze accepts a multipart PDF upload and returns the
// analysis. An optional user_id form field attaches tracking metadata.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "missing 'file' upload field")
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		s.errorResponse(w, http.StatusBadRequest, "only PDF files are supported")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read upload")
		return
	}
	if len(data) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "empty file uploaded")
		return
	}

	var identity *types.Identity
	if userID := r.FormValue("user_id"); userID != "" {
		identity = &types.Identity{UserID: userID, Filename: header.Filename}
		if err := identity.Validate(); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid identity metadata")
			return
		}
	}

	result, err := s.analyzer.Analyze(data, identity)
	if err != nil {
		var parseErr *extract.ParseError
		if errors.As(err, &parseErr) {
			s.errorResponse(w, http.StatusBadRequest, "document could not be parsed as a PDF")
			return
		}
		s.log.Error("analysis failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to analyze resume")
		return
	}

	s.jsonResponse(w, http.StatusOK, AnalyzeResponse{
		ID:             uuid.NewString(),
		AnalysisResult: result,
	})
}

// fieldAliases maps the URL forms accepted by the courses endpoint to
// canonical field labels.
var fieldAliases = map[string]string{
	"data_science":        "Data Science",
	"datascience":         "Data Science",
	"data-science":        "Data Science",
	"web_development":     "Web Development",
	"webdevelopment":      "Web Development",
	"web":                 "Web Development",
	"android":             "Android Development",
	"android_development": "Android Development",
	"ios":                 "iOS Development",
	"ios_development":     "iOS Development",
	"ui_ux":               "UI/UX Design",
	"uiux":                "UI/UX Design",
	"ui_ux_design":        "UI/UX Design",
	"design":              "UI/UX Design",
}

// handleCoursesByField returns the course catalog for one field.
func (s *Server) handleCoursesByField(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("field")

	canonical, ok := fieldAliases[strings.ToLower(raw)]
	if !ok {
		canonical = raw
	}

	courses := classify.CoursesForField(canonical)
	if courses == nil {
		courses = []string{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"field":   canonical,
		"courses": courses,
		"count":   len(courses),
	})
}

// handleListCourses returns every course catalog keyed by field.
func (s *Server) handleListCourses(w http.ResponseWriter, _ *http.Request) {
	catalog := make(map[string][]string)
	total := 0
	for _, field := range []string{
		"Data Science", "Web Development", "Android Development",
		"iOS Development", "UI/UX Design",
	} {
		courses := classify.CoursesForField(field)
		catalog[field] = courses
		total += len(courses)
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"fields":      catalog,
		"total_count": total,
	})
}
