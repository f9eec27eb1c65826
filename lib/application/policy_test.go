package applicationhandler

import (
	"testing"

	"job-board-backend/models"

	"github.com/stretchr/testify/require"
)

var allStatuses = []models.ApplicationStatus{
	models.ApplicationStatusPending,
	models.ApplicationStatusInvited,
	models.ApplicationStatusRejected,
	models.ApplicationStatusHired,
}

func TestCheckTransition(t *testing.T) {
	t.Run(`employer transitions are unchecked`, func(t *testing.T) {
		for _, from := range allStatuses {
			for _, to := range allStatuses {
				require.NoError(t, CheckTransition(models.EmployerRole, from, to))
				require.NoError(t, CheckTransition(models.AdminRole, from, to))
			}
		}
	})

	t.Run(`applicant answers only invitations`, func(t *testing.T) {
		require.NoError(t, CheckTransition(models.ApplicantRole, models.ApplicationStatusInvited, models.ApplicationStatusHired))
		require.NoError(t, CheckTransition(models.ApplicantRole, models.ApplicationStatusInvited, models.ApplicationStatusRejected))
		for _, from := range allStatuses {
			if from == models.ApplicationStatusInvited {
				continue
			}
			require.ErrorIs(t, CheckTransition(models.ApplicantRole, from, models.ApplicationStatusHired), ErrInvalidTransition)
		}
		require.ErrorIs(t, CheckTransition(models.ApplicantRole, models.ApplicationStatusInvited, models.ApplicationStatusPending), ErrInvalidTransition)
	})

	t.Run(`unknown status check`, func(t *testing.T) {
		require.ErrorIs(t, CheckTransition(models.EmployerRole, models.ApplicationStatusPending, "archived"), ErrInvalidStatus)
	})

	t.Run(`unknown role check`, func(t *testing.T) {
		require.ErrorIs(t, CheckTransition("GUEST", models.ApplicationStatusPending, models.ApplicationStatusInvited), ErrForbidden)
	})
}
