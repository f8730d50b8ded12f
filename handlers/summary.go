package handlers

import (
	"context"
	"errors"
	"net/http"
	"transcript-summary-api/llm"
	"transcript-summary-api/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const missingAPIKeyDetail = "Server is not configured with an API key."

type Completer interface {
	Complete(ctx context.Context, messages []llm.Message) (string, error)
}

type HTMLRenderer interface {
	ToHTML(md string) (string, error)
}

type SummaryRequest struct {
	Transcript string `json:"transcript" binding:"required"`
	Prompt     string `json:"prompt" binding:"required"`
}

type SummaryResponse struct {
	SummaryHTML     string `json:"summary_html"`
	SummaryMarkdown string `json:"summary_markdown"`
}

// HandleGenerateSummary asks the model for a markdown summary of the
// transcript and returns it alongside its HTML rendering.
func HandleGenerateSummary(logger *zap.Logger, completer Completer, renderer HTMLRenderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		sugar := logger.Sugar()
		var req SummaryRequest
		if !bindJSON(c, &req) {
			return
		}

		sugar.Infow("Generating summary",
			"transcript_chars", len(req.Transcript),
			"prompt_chars", len(req.Prompt))

		md, err := completer.Complete(c.Request.Context(), llm.BuildMessages(req.Prompt, req.Transcript))
		if err != nil {
			if errors.Is(err, llm.ErrMissingAPIKey) {
				utils.SummaryRequestsTotal.WithLabelValues(utils.OutcomeUnconfigured).Inc()
				sugar.Error("Summary requested but no API key is configured")
				abortWithDetail(c, http.StatusInternalServerError, missingAPIKeyDetail)
				return
			}
			utils.SummaryRequestsTotal.WithLabelValues(utils.OutcomeError).Inc()
			sugar.Errorw("Summary generation failed",
				"error", err)
			abortWithDetail(c, http.StatusInternalServerError, err.Error())
			return
		}

		html, err := renderer.ToHTML(md)
		if err != nil {
			utils.SummaryRequestsTotal.WithLabelValues(utils.OutcomeError).Inc()
			sugar.Errorw("Markdown rendering failed",
				"error", err)
			abortWithDetail(c, http.StatusInternalServerError, err.Error())
			return
		}

		utils.SummaryRequestsTotal.WithLabelValues(utils.OutcomeSuccess).Inc()
		c.JSON(http.StatusOK, SummaryResponse{
			SummaryHTML:     html,
			SummaryMarkdown: md,
		})
	}
}
