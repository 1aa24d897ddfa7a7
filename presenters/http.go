package presenters

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"

	gw "payments-gateway/domain/entities/gateway"
	"payments-gateway/utils/configs"
	"payments-gateway/utils/errors"
)

const bankReturn = "/gateway/return"

// PaymentCompleter drives phase two when the bank posts the 3-D Secure
// verification result back to us.
type PaymentCompleter interface {
	CompletePayment(ctx context.Context, orderId, verificationToken string) (*gw.CompletionResult, error)
}

// Server listens for the bank-side leg of the wire protocol: the redirect
// return carrying the cardholder's verification outcome.
type Server struct {
	conf       *configs.Config
	logger     *zap.Logger
	httpServer *http.Server
	payments   PaymentCompleter
}

func NewServer(conf *configs.Config, logger *zap.Logger, payments PaymentCompleter) *Server {
	server := &Server{
		conf:     conf,
		logger:   logger,
		payments: payments,
	}

	router := httprouter.New()
	server.Register(router)
	server.httpServer = &http.Server{
		Handler: router,
	}

	return server
}

func (s *Server) Register(router *httprouter.Router) {
	router.POST(bankReturn, s.bankReturn)
}

func (s *Server) Start() error {
	serverAddress := fmt.Sprintf(":%v", s.conf.Port)

	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	s.logger.Info("listening for bank returns", zap.String("address", serverAddress))
	return s.httpServer.Serve(listener)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

type completionResponse struct {
	Status    string `json:"status"`
	OrderId   string `json:"order_id,omitempty"`
	ReceiptId string `json:"receipt_id,omitempty"`
	Message   string `json:"message,omitempty"`
}

// bankReturn receives the form the bank posts after the cardholder finishes
// (or abandons) verification.
func (s *Server) bankReturn(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderId := r.FormValue("OrderId")
	verificationToken := r.FormValue("ThreeDSecureCode")
	if orderId == "" || verificationToken == "" {
		s.logger.Warn("bank return with missing fields", zap.String("order_id", orderId))
		writeJSON(w, http.StatusBadRequest, completionResponse{Status: "rejected", Message: "missing order id or verification token"})
		return
	}

	result, err := s.payments.CompletePayment(r.Context(), orderId, verificationToken)
	if err != nil {
		s.logger.Error("payment completion failed", zap.String("order_id", orderId), zap.Error(err))
		switch errors.KindOf(err) {
		case errors.KindValidation:
			writeJSON(w, http.StatusBadRequest, completionResponse{Status: "rejected", OrderId: orderId, Message: err.Error()})
		case errors.KindGatewayRejected:
			writeJSON(w, http.StatusOK, completionResponse{Status: "declined", OrderId: orderId, Message: err.Error()})
		default:
			writeJSON(w, http.StatusBadGateway, completionResponse{Status: "error", OrderId: orderId, Message: err.Error()})
		}
		return
	}

	writeJSON(w, http.StatusOK, completionResponse{
		Status:    "settled",
		OrderId:   result.OrderId,
		ReceiptId: result.ReceiptId,
	})
}

func writeJSON(w http.ResponseWriter, status int, body completionResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
