package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	apperrors "github.com/edufi/quiz-grading-service/internal/errors"
	"github.com/edufi/quiz-grading-service/internal/grading"
	"github.com/edufi/quiz-grading-service/internal/migration"
	"github.com/edufi/quiz-grading-service/internal/repositories"
	"github.com/edufi/quiz-grading-service/internal/services"
	"github.com/edufi/quiz-grading-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type GradingHandler struct {
	BaseHandler
	gradingService services.GradingService
	publicSpecSvc  services.PublicSpecService
	exportService  services.ExportService
}

func NewGradingHandler(
	gradingService services.GradingService,
	publicSpecSvc services.PublicSpecService,
	exportService services.ExportService,
	logger utils.Logger,
) *GradingHandler {
	return &GradingHandler{
		BaseHandler:    NewBaseHandler(logger),
		gradingService: gradingService,
		publicSpecSvc:  publicSpecSvc,
		exportService:  exportService,
	}
}

// Grade evaluates one submission against one specification
// @Summary Grade submission
// @Description Grades a quiz submission against its exercise specification
// @Tags grading
// @Accept json
// @Produce json
// @Param request body services.GradingRequest true "Spec and submission"
// @Success 200 {object} models.ExerciseTaskGradingResult
// @Failure 500 {object} GradingErrorResponse
// @Router /grade [post]
func (h *GradingHandler) Grade(c *gin.Context) {
	h.LogRequest(c, "Grading submission")

	var req services.GradingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondGradingError(c, fmt.Errorf("invalid request payload: %w", err))
		return
	}

	result, err := h.gradingService.Grade(c.Request.Context(), &req)
	if err != nil {
		h.respondGradingError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// PublicSpec converts a private specification into its student-facing view
// @Summary Convert to public spec
// @Description Strips all answer-revealing fields from a private specification
// @Tags grading
// @Accept json
// @Produce json
// @Success 200 {object} models.PublicSpecQuiz
// @Failure 500 {object} GradingErrorResponse
// @Router /public-spec [post]
func (h *GradingHandler) PublicSpec(c *gin.Context) {
	h.LogRequest(c, "Converting specification to public spec")

	raw, err := c.GetRawData()
	if err != nil {
		h.respondGradingError(c, fmt.Errorf("failed to read request body: %w", err))
		return
	}

	public, err := h.publicSpecSvc.FromPrivateSpec(c.Request.Context(), json.RawMessage(raw))
	if err != nil {
		h.respondGradingError(c, err)
		return
	}

	c.JSON(http.StatusOK, public)
}

// ModelSolution returns the teacher-facing solution view of a specification
// @Summary Model solution
// @Description Returns the full specification as the teacher solution view
// @Tags grading
// @Accept json
// @Produce json
// @Success 200 {object} models.ModelSolutionQuiz
// @Failure 500 {object} GradingErrorResponse
// @Router /model-solution [post]
func (h *GradingHandler) ModelSolution(c *gin.Context) {
	h.LogRequest(c, "Building model solution")

	raw, err := c.GetRawData()
	if err != nil {
		h.respondGradingError(c, fmt.Errorf("failed to read request body: %w", err))
		return
	}

	solution, err := h.publicSpecSvc.ModelSolution(c.Request.Context(), json.RawMessage(raw))
	if err != nil {
		h.respondGradingError(c, err)
		return
	}

	c.JSON(http.StatusOK, solution)
}

// ListGradings lists persisted grading audit records
// @Summary List grading audit records
// @Tags audit
// @Produce json
// @Param spec_digest query string false "Filter by spec digest"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} GradingListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /gradings [get]
func (h *GradingHandler) ListGradings(c *gin.Context) {
	h.LogRequest(c, "Listing grading audit records")

	filters, err := parseAuditFilters(c)
	if err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid filter parameters", err, err.Error())
		return
	}

	records, total, err := h.exportService.ListGradings(c.Request.Context(), filters)
	if err != nil {
		h.handleAuditError(c, err)
		return
	}

	c.JSON(http.StatusOK, GradingListResponse{
		Gradings: records,
		Total:    total,
		Limit:    filters.Limit,
		Offset:   filters.Offset,
	})
}

// ExportGradings exports grading audit records as an xlsx workbook
// @Summary Export grading audit records
// @Tags audit
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /gradings/export [get]
func (h *GradingHandler) ExportGradings(c *gin.Context) {
	h.LogRequest(c, "Exporting grading audit records")

	filters, err := parseAuditFilters(c)
	if err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid filter parameters", err, err.Error())
		return
	}

	workbook, err := h.exportService.ExportGradingsToExcel(c.Request.Context(), filters)
	if err != nil {
		h.handleAuditError(c, err)
		return
	}

	filename := "gradings-" + time.Now().Format("2006-01-02") + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", workbook)
}

func (h *GradingHandler) handleAuditError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrAuditStoreDisabled):
		h.RespondWithError(c, http.StatusServiceUnavailable, "Grading audit store is not configured", err)
	case repositories.IsNotFoundError(err):
		h.RespondWithError(c, http.StatusNotFound, "Grading audit record not found", err)
	default:
		h.RespondWithError(c, http.StatusInternalServerError, "Failed to access grading audit store", err)
	}
}

// respondGradingError emits the fatal-error envelope the grading contract
// promises: HTTP 500 with the error class name, message and stack.
func (h *GradingHandler) respondGradingError(c *gin.Context, err error) {
	h.LogError(c, err, "Grading request failed")

	c.JSON(http.StatusInternalServerError, GradingErrorResponse{
		ErrorName:    errorName(err),
		ErrorMessage: err.Error(),
		ErrorStack:   string(debug.Stack()),
	})
}

// errorName maps an error to the class name reported in the envelope.
func errorName(err error) string {
	var itemNotInSpec *grading.ItemNotInSpecError
	if errors.As(err, &itemNotInSpec) {
		return "ItemNotInSpecError"
	}
	var unknownType *grading.UnknownItemTypeError
	if errors.As(err, &unknownType) {
		return "UnknownItemTypeError"
	}
	var answerItemNotFound *migration.AnswerItemNotFoundError
	if errors.As(err, &answerItemNotFound) {
		return "AnswerItemNotFoundError"
	}
	var validationErrs apperrors.ValidationErrors
	if errors.As(err, &validationErrs) {
		return "ValidationError"
	}
	if errors.Is(err, migration.ErrUnsupportedVersion) {
		return "UnsupportedVersionError"
	}
	if services.IsGradingInputError(err) {
		return "GradingInputError"
	}
	return "GradingError"
}

func parseAuditFilters(c *gin.Context) (repositories.GradingAuditFilters, error) {
	filters := repositories.GradingAuditFilters{
		SpecDigest: c.Query("spec_digest"),
		Limit:      50,
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > 1000 {
			return filters, fmt.Errorf("limit must be an integer between 1 and 1000")
		}
		filters.Limit = limit
	}

	if offsetStr := c.Query("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			return filters, fmt.Errorf("offset must be a non-negative integer")
		}
		filters.Offset = offset
	}

	if fromStr := c.Query("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			return filters, fmt.Errorf("from must be an RFC 3339 timestamp")
		}
		filters.From = &from
	}

	if toStr := c.Query("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			return filters, fmt.Errorf("to must be an RFC 3339 timestamp")
		}
		filters.To = &to
	}

	return filters, nil
}
