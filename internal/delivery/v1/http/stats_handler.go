package http

import (
	"net/http"

	"github.com/lavka-tech/storefront-backend/internal/usecase"
	"github.com/lavka-tech/storefront-backend/pkg/logger"
)

type StatsHandler struct {
	statsUC usecase.StatsUC
	logger  logger.Logger
}

func NewStatsHandler(statsUC usecase.StatsUC, logger logger.Logger) *StatsHandler {
	return &StatsHandler{statsUC: statsUC, logger: logger}
}

// dashboard
//
//	@Summary	Сводная статистика магазина
//	@Tags		admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	DashboardResponse
//	@Router		/admin/dashboard [get]
func (s *StatsHandler) dashboard(w http.ResponseWriter, r *http.Request) {
	res, err := s.statsUC.Dashboard(r.Context())
	if err != nil {
		s.logger.Errorf(err, "Failed to build dashboard")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toDashboardResponse(res))
}
