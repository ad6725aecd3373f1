// Package transport exposes read-only derivation endpoints over HTTP.
// Nothing behind these handlers signs or talks to a node.
package transport

import (
	"encoding/hex"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/ClaudeMonet1/alph-zap/internal/alephium/codec"
	"github.com/ClaudeMonet1/alph-zap/internal/nostr"
)

// DeriveHandler serves address derivation, verification and group lookup.
type DeriveHandler struct {
	codec  *codec.Codec
	logger *zap.Logger
}

// NewDeriveHandler returns a DeriveHandler instance.
func NewDeriveHandler(c *codec.Codec, logger *zap.Logger) *DeriveHandler {
	return &DeriveHandler{codec: c, logger: logger}
}

// Register mounts the handler's routes on mux.
func (h *DeriveHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/v1/addresses/derive", h.derive)
	mux.HandleFunc("/v1/addresses/verify", h.verify)
	mux.HandleFunc("/v1/addresses/group", h.group)
}

type deriveResponse struct {
	Address      string `json:"address"`
	Group        uint8  `json:"group"`
	PublicKeyHex string `json:"publicKey"`
}

// derive maps ?key=<npub-or-hex> to its chain address and group.
func (h *DeriveHandler) derive(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	pub, err := nostr.DecodePublicKey(r.URL.Query().Get("key"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	d, err := h.codec.DeriveAddress(pub)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.writeJSON(w, deriveResponse{
		Address:      d.Address,
		Group:        h.codec.GroupOf(d.Hash),
		PublicKeyHex: hex.EncodeToString(pub),
	})
}

type verifyResponse struct {
	Valid bool `json:"valid"`
}

// verify reports whether ?key= derives exactly ?address=.
func (h *DeriveHandler) verify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	pub, err := nostr.DecodePublicKey(r.URL.Query().Get("key"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	address := r.URL.Query().Get("address")
	if address == "" {
		h.writeError(w, http.StatusBadRequest, "address is required")
		return
	}
	h.writeJSON(w, verifyResponse{Valid: h.codec.Verify(pub, address)})
}

type groupResponse struct {
	Group uint8 `json:"group"`
}

// group maps ?address= to its shard group.
func (h *DeriveHandler) group(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	g, err := h.codec.GroupOfAddress(r.URL.Query().Get("address"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.writeJSON(w, groupResponse{Group: g})
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *DeriveHandler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("write response", zap.Error(err))
	}
}

func (h *DeriveHandler) writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorResponse{Error: msg}); err != nil {
		h.logger.Error("write error response", zap.Error(err))
	}
}
