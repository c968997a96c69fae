package handler

import (
	"testing"

	"go-ims/internal/backup"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func writeBackupFile(t *testing.T, s *testServer, name, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(s.fs, "backup/"+name, []byte(content), 0o644))
}

func TestSANStatusRoutes(t *testing.T) {
	s := newTestServer(t, nil)

	var msg map[string]interface{}
	require.Equal(t, 200, s.call(t, "GET", "/api/san-status", nil, &msg))
	require.Equal(t, "No SAN usage log yet", msg["message"])

	var log []map[string]interface{}
	require.Equal(t, 200, s.call(t, "GET", "/api/backup-log", nil, &log))
	require.Empty(t, log)

	writeBackupFile(t, s, backup.UsageLogFile, "timestamp,used_gb,total_gb\n2024-05-01,10,100\n2024-05-02,12,100\n")

	var status map[string]interface{}
	require.Equal(t, 200, s.call(t, "GET", "/api/san-status", nil, &status))
	require.Equal(t, "2024-05-02", status["timestamp"])
	require.Equal(t, 12.0, status["used_gb"])
	require.Equal(t, 100.0, status["total_gb"])
	require.Contains(t, status, "prediction_date")
	require.Nil(t, status["prediction_date"])

	require.Equal(t, 200, s.call(t, "GET", "/api/backup-log", nil, &log))
	require.Len(t, log, 2)
	require.Equal(t, "2024-05-02", log[0]["timestamp"])
}

func TestRunBackupAndPredict(t *testing.T) {
	s := newTestServer(t, nil)

	var res map[string]interface{}
	require.Equal(t, 500, s.call(t, "POST", "/api/run-backup-and-predict", nil, &res))
	require.Equal(t, false, res["success"])
	require.Contains(t, res["error"], "PowerShell script not found")
	require.Equal(t, "backup", res["step"])

	writeBackupFile(t, s, backup.BackupScript, "#")
	writeBackupFile(t, s, backup.PredictScript, "#")
	writeBackupFile(t, s, backup.UsageLogFile, "timestamp,used_gb,total_gb\n2024-05-02,12,100\n")
	writeBackupFile(t, s, backup.PredictionFile, `{"prediction_date":"2025-03-01"}`)

	require.Equal(t, 200, s.call(t, "POST", "/api/run-backup-and-predict", nil, &res))
	require.Equal(t, true, res["success"])
	require.Equal(t, 12.0, res["used_gb"])
	require.Equal(t, "2025-03-01", res["prediction_date"])
}

func TestRunBackupAndPredictStepFailure(t *testing.T) {
	s := newTestServer(t, stubRunner{err: errStepFailed})
	writeBackupFile(t, s, backup.BackupScript, "#")
	writeBackupFile(t, s, backup.PredictScript, "#")

	var res map[string]interface{}
	require.Equal(t, 500, s.call(t, "POST", "/api/run-backup-and-predict", nil, &res))
	require.Equal(t, false, res["success"])
	require.Equal(t, "backup step failed: Access is denied.", res["error"])
	require.Equal(t, "backup", res["step"])
}
