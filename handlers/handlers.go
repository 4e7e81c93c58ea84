package handlers

import (
	"yt-study/models"
	"yt-study/services/study"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type StudyHandler struct {
	service study.Service
}

func NewStudyHandler(service study.Service) *StudyHandler {
	return &StudyHandler{service: service}
}

// Summarize validates the submitted URL, starts a pipeline run in the
// background, and returns the new run for the frontend to poll.
func (h *StudyHandler) Summarize(c *fiber.Ctx) error {
	url := c.FormValue("url")
	mode := c.FormValue("mode")

	logrus.WithFields(logrus.Fields{
		"request_id": requestID(c),
		"url":        url,
		"mode":       mode,
	}).Info("Received summarize request")

	run, err := h.service.Run(c.UserContext(), url, mode)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"request_id": requestID(c),
		"run_id":     run.ID,
	}).Info("Pipeline run accepted")

	return c.JSON(models.NewRunResponse(run))
}

// GetRun returns the current state of a run, used by the frontend for
// progress polling and re-rendering.
func (h *StudyHandler) GetRun(c *fiber.Ctx) error {
	run, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(models.NewRunResponse(run))
}

// ExportRun serves the combined study-notes document as a download.
func (h *StudyHandler) ExportRun(c *fiber.Ctx) error {
	doc, err := h.service.Export(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="youtube_summary_study_notes.txt"`)
	return c.SendString(doc)
}

func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// requestID reads the ID assigned by the requestid middleware.
func requestID(c *fiber.Ctx) string {
	return c.GetRespHeader("X-Request-ID")
}
