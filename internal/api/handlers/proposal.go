package handlers

import (
	"log"
	"net/http"

	"solar-proposal/internal/api/models"
	"solar-proposal/internal/model"
	"solar-proposal/internal/proposal"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProposalHandler handles proposal calculation requests.
type ProposalHandler struct {
	engine *proposal.Engine
}

// NewProposalHandler creates a new proposal handler.
func NewProposalHandler(engine *proposal.Engine) *ProposalHandler {
	return &ProposalHandler{engine: engine}
}

// CreateProposal handles POST /api/v1/proposals
func (h *ProposalHandler) CreateProposal(c *gin.Context) {
	var req models.ProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	res, err := h.engine.Calculate(toProfile(req.Customer))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "CALCULATION_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	id := uuid.NewString()
	log.Printf("ProposalHandler: proposal %s for postcode %q (%d options)",
		id, res.Customer.Postcode, len(res.Options))
	c.JSON(http.StatusOK, models.FromResult(id, res, req.Options.IncludeDetail))
}

// toProfile maps the API request onto the engine's input record. The API
// takes escalation as a whole percentage; the engine works in fractions.
func toProfile(req models.CustomerRequest) model.CustomerProfile {
	return model.CustomerProfile{
		Name:     req.Name,
		Suburb:   req.Suburb,
		Postcode: req.Postcode,
		State:    req.State,

		DailyUsageKwh: req.DailyUsageKwh,
		TariffRate:    req.TariffRate,
		SupplyCharge:  req.SupplyCharge,
		FeedInTariff:  req.FeedInTariff,
		Escalation:    req.EscalationPct / 100,

		HasEV:               req.HasEV,
		HasPool:             req.HasPool,
		HasDuctedAC:         req.HasDuctedAC,
		HasElectricHotWater: req.HasElectricHotWater,

		Phase:       model.Phase(req.Phase),
		Orientation: model.Orientation(req.Orientation),
	}
}
