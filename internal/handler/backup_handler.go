package handler

import (
	"context"
	"errors"

	"go-ims/internal/backup"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

type StatusReader interface {
	Status() (*backup.Status, error)
	Log() ([]backup.Sample, error)
}

type BackupRunner interface {
	Run(ctx context.Context) (*backup.Status, error)
}

type BackupHandler struct {
	reporter StatusReader
	trigger  BackupRunner
}

func NewBackupHandler(reporter StatusReader, trigger BackupRunner) *BackupHandler {
	return &BackupHandler{reporter: reporter, trigger: trigger}
}

// GET /api/san-status
func (h *BackupHandler) GetStatus(c *fiber.Ctx) error {
	status, err := h.reporter.Status()
	if err != nil {
		if errors.Is(err, backup.ErrNoUsageData) {
			return c.JSON(fiber.Map{"message": "No SAN usage log yet"})
		}
		log.Error().Err(err).Msg("read SAN status")
		return c.Status(500).JSON(fiber.Map{"error": "Failed to read SAN status"})
	}
	return c.JSON(status)
}

// GET /api/backup-log
func (h *BackupHandler) GetLog(c *fiber.Ctx) error {
	samples, err := h.reporter.Log()
	if err != nil {
		log.Error().Err(err).Msg("read backup log")
		return c.Status(500).JSON(fiber.Map{"error": "Failed to read backup log"})
	}
	return c.JSON(samples)
}

// RunBackupAndPredict blocks until both scripts finish
// POST /api/run-backup-and-predict
func (h *BackupHandler) RunBackupAndPredict(c *fiber.Ctx) error {
	status, err := h.trigger.Run(c.UserContext())
	if err != nil {
		body := fiber.Map{"success": false, "error": err.Error()}
		var stepErr *backup.StepError
		if errors.As(err, &stepErr) {
			body["step"] = stepErr.Step
			log.Error().Err(err).Str("step", stepErr.Step).Msg("backup and predict failed")
		}
		return c.Status(500).JSON(body)
	}
	return c.JSON(fiber.Map{
		"success":         true,
		"timestamp":       status.Timestamp,
		"used_gb":         status.UsedGB,
		"total_gb":        status.TotalGB,
		"prediction_date": status.PredictionDate,
	})
}
