package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	"paygate/internal/app/commands"
	intentapp "paygate/internal/app/handlers/intent"
	"paygate/internal/app/queries"
	"paygate/internal/domain/payment"
	"paygate/internal/domain/shared/fault"
)

type PaymentHandler struct {
	Commands commands.Bus
	Queries  queries.Bus
}

type createIntentRequest struct {
	Amount        *int64            `json:"amount"`
	Currency      string            `json:"currency"`
	CustomerEmail string            `json:"customerEmail"`
	Metadata      map[string]string `json:"metadata"`
}

type createIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"clientSecret"`
	Created      int64  `json:"created"`
	Livemode     bool   `json:"livemode"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

func (h PaymentHandler) Create(c *gin.Context) {
	if h.Commands == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "commands unavailable"})
		return
	}
	var req createIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeFault(c, fault.InvalidArgument("Request data is required"))
		return
	}
	cmd := intentapp.CreateIntentCommand{
		Request: &payment.IntentRequest{
			Currency:      req.Currency,
			CustomerEmail: req.CustomerEmail,
			Metadata:      req.Metadata,
		},
	}
	if req.Amount != nil {
		cmd.Request.AmountCents = *req.Amount
	}
	record, err := commands.Dispatch[intentapp.CreateIntentCommand, *payment.IntentRecord](c.Request.Context(), h.Commands, cmd)
	if err != nil {
		writeFault(c, err)
		return
	}
	c.JSON(http.StatusOK, createIntentResponse{
		ID:           record.ID,
		ClientSecret: record.ClientSecret,
		Created:      record.Created,
		Livemode:     record.Livemode,
		Amount:       record.Amount,
		Currency:     record.Currency,
		Status:       record.Status,
	})
}

type validateIntentRequest struct {
	PaymentIntentID string `json:"paymentIntentId"`
}

type validateIntentResponse struct {
	Valid    bool   `json:"valid"`
	Status   string `json:"status"`
	Amount   int64  `json:"amount,omitempty"`
	Currency string `json:"currency,omitempty"`
	ID       string `json:"id,omitempty"`
	Error    string `json:"error,omitempty"`
}

func (h PaymentHandler) Validate(c *gin.Context) {
	if h.Queries == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "queries unavailable"})
		return
	}
	var req validateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeFault(c, fault.InvalidArgument("Request data is required"))
		return
	}
	query := intentapp.ValidateIntentQuery{PaymentIntentID: req.PaymentIntentID}
	result, err := queries.Ask[intentapp.ValidateIntentQuery, payment.ValidationResult](c.Request.Context(), h.Queries, query)
	if err != nil {
		writeFault(c, err)
		return
	}
	c.JSON(http.StatusOK, validateIntentResponse{
		Valid:    result.Valid,
		Status:   result.Status,
		Amount:   result.Amount,
		Currency: result.Currency,
		ID:       result.ID,
		Error:    result.Error,
	})
}

// writeFault maps the fault taxonomy onto HTTP statuses. The mapping is a
// transport concern; handlers only decide the kind.
func writeFault(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch fault.KindOf(err) {
	case fault.KindInvalidArgument:
		status = http.StatusBadRequest
	case fault.KindFailedPrecondition:
		status = http.StatusPaymentRequired
	case fault.KindInternal:
		status = http.StatusBadGateway
	}
	c.JSON(status, gin.H{"error": fault.MessageOf(err)})
}

var _ PaymentHTTP = PaymentHandler{}
