package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/AlexZinkM/algo-wallet/algorand"
	"github.com/AlexZinkM/algo-wallet/internal/common"
	"github.com/AlexZinkM/algo-wallet/internal/model"

	"github.com/rs/zerolog"
)

// WalletHandler exposes wallet operations over HTTP
type WalletHandler struct {
	svc *algorand.Service
	log zerolog.Logger
}

// NewWalletHandler creates a new WalletHandler
func NewWalletHandler(svc *algorand.Service, log zerolog.Logger) *WalletHandler {
	return &WalletHandler{svc: svc, log: log}
}

// CreateAccount handles POST /api/create-account
// @Summary      Create new account
// @Description  Generates a new account and returns its address, QR code and 25-word recovery phrase
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.CreateAccountResponse
// @Failure      500  {object}  model.ErrorResponse
// @Router       /api/create-account [post]
func (h *WalletHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	created, err := h.svc.CreateAccount()
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	// The recovery phrase goes to the caller once and is never logged
	writeJSON(w, http.StatusOK, model.CreateAccountResponse{
		Success:  true,
		Message:  "Account created successfully",
		Address:  created.Address,
		Mnemonic: created.Mnemonic,
		QR:       created.QR,
	})
}

// RecoverAccount handles POST /api/recover-account
// @Summary      Recover account from phrase
// @Description  Derives the account address from a 25-word recovery phrase
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.RecoverRequest  true  "Recovery phrase"
// @Success      200      {object}  model.RecoverResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /api/recover-account [post]
func (h *WalletHandler) RecoverAccount(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.RecoverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "invalid request body", Code: "bad_request"})
		return
	}

	recovered, err := h.svc.RecoverAccount(req.Mnemonic)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.RecoverResponse{
		Success: true,
		Message: "Account recovered successfully",
		Address: recovered.Address,
	})
}

// GetBalance handles GET /api/balance
// @Summary      Get account balance
// @Description  Gets total, minimum and available balance of an address
// @Tags         wallet
// @Produce      json
// @Param        address  query     string  true  "Account address"
// @Success      200      {object}  model.BalanceResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /api/balance [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	address := r.URL.Query().Get("address")
	if address == "" {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "address is required", Code: "bad_request"})
		return
	}

	balance, err := h.svc.Balance(r.Context(), address)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, balance)
}

// SendTransaction handles POST /api/send-transaction
// @Summary      Send a payment
// @Description  Builds, signs, submits a payment and waits for its confirmation
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.SendRequest  true  "Payment data"
// @Success      200      {object}  model.SendResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /api/send-transaction [post]
func (h *WalletHandler) SendTransaction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.SendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "invalid request body", Code: "bad_request"})
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error(), Code: "bad_request"})
		return
	}

	amount, err := common.AlgoToMicroAlgos(req.AmountAlgo)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "invalid amount: " + err.Error(), Code: "invalid_amount"})
		return
	}

	result, err := h.svc.Send(r.Context(), algorand.TransferIntent{
		SenderMnemonic:   req.SenderMnemonic,
		Receiver:         req.Receiver,
		AmountMicroAlgos: amount,
		Note:             []byte(req.Note),
	})
	if err != nil {
		// A transaction that made it onto the network keeps its id even
		// when the outcome is an error
		if result != nil && result.TxID != "" {
			status, _ := classify(err)
			writeJSON(w, status, model.SendResponse{
				Success:       false,
				TransactionID: result.TxID,
				Message:       err.Error(),
			})
			return
		}
		h.writeServiceError(w, err)
		return
	}

	resp := model.SendResponse{
		Success:       true,
		TransactionID: result.TxID,
		Message:       "Transaction confirmed",
	}
	if result.Confirmed {
		round := result.ConfirmedRound
		resp.ConfirmedRound = &round
	} else {
		resp.Message = "Transaction submitted, confirmation still pending"
	}

	writeJSON(w, http.StatusOK, resp)
}

// TransactionStatus handles GET /api/transaction-status
// @Summary      Get transaction status
// @Description  Gets the node's view of a submitted transaction by its id
// @Tags         wallet
// @Produce      json
// @Param        txid  query     string  true  "Transaction id"
// @Success      200   {object}  model.TransactionRecord
// @Failure      404   {object}  model.ErrorResponse
// @Router       /api/transaction-status [get]
func (h *WalletHandler) TransactionStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	txid := r.URL.Query().Get("txid")
	if txid == "" {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "txid is required", Code: "bad_request"})
		return
	}

	record, err := h.svc.Status(r.Context(), txid)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// TransactionHistory handles GET /api/transaction-history
// @Summary      Get transaction history
// @Description  Gets the address's transactions from the indexer, newest first
// @Tags         wallet
// @Produce      json
// @Param        address  query     string  true   "Account address"
// @Param        limit    query     int     false  "Maximum records to return (default 10, max 1000)"
// @Param        type     query     string  false  "Transaction type: pay, axfer or appl"
// @Success      200      {object}  model.HistoryResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /api/transaction-history [get]
func (h *WalletHandler) TransactionHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	req := model.HistoryRequest{
		Address: r.URL.Query().Get("address"),
		Limit:   algorand.DefaultHistoryLimit,
		TxType:  r.URL.Query().Get("type"),
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.ParseUint(limitStr, 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "limit must be a positive integer", Code: "bad_request"})
			return
		}
		req.Limit = limit
	}

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error(), Code: "bad_request"})
		return
	}

	history, err := h.svc.History(r.Context(), req.Address, req.Limit, req.TxType)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, history)
}

// NetworkStatus handles GET /api/network-status
// @Summary      Get network status
// @Description  Reports node reachability, the current round and the network name
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.NetworkStatusResponse
// @Router       /api/network-status [get]
func (h *WalletHandler) NetworkStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	status, err := h.svc.NetworkStatus(r.Context())
	if err != nil {
		// A status endpoint reports the outage instead of failing on it
		writeJSON(w, http.StatusOK, model.NetworkStatusResponse{
			Status:    "offline",
			Connected: false,
			Error:     err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, status)
}

// writeServiceError maps a service error onto the wire. The error kind picks
// the status code and a stable machine-readable code.
func (h *WalletHandler) writeServiceError(w http.ResponseWriter, err error) {
	status, code := classify(err)
	if status >= http.StatusInternalServerError {
		h.log.Error().Err(err).Msg("request failed")
	}
	writeJSON(w, status, model.ErrorResponse{Error: err.Error(), Code: code})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, algorand.ErrInvalidPhrase):
		return http.StatusBadRequest, "invalid_phrase"
	case errors.Is(err, algorand.ErrInvalidAddress):
		return http.StatusBadRequest, "invalid_address"
	case errors.Is(err, algorand.ErrInvalidAmount):
		return http.StatusBadRequest, "invalid_amount"
	case errors.Is(err, algorand.ErrNoteTooLong):
		return http.StatusBadRequest, "note_too_long"
	case errors.Is(err, algorand.ErrSelfTransfer):
		return http.StatusBadRequest, "self_transfer"
	case algorand.IsInsufficientBalanceError(err):
		return http.StatusBadRequest, "insufficient_balance"
	case algorand.IsRejectedError(err):
		return http.StatusBadRequest, "transaction_rejected"
	case errors.Is(err, algorand.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case algorand.IsNetworkError(err):
		return http.StatusServiceUnavailable, "network_unavailable"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
