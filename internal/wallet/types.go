package wallet

import (
	"context"

	"github.com/ClaudeMonet1/alph-zap/internal/alephium/node"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// NodeClient is the subset of the full-node API the wallet needs.
	NodeClient interface {
		GetBalance(ctx context.Context, address string) (*node.Balance, error)
		BuildTransaction(ctx context.Context, req node.BuildTransactionRequest) (*node.UnsignedTransaction, error)
		SubmitTransaction(ctx context.Context, req node.SubmitTransactionRequest) (*node.SubmitTransactionResult, error)
	}

	// Signer signs a 32-byte transaction id and exposes its x-only key.
	Signer interface {
		Sign(txID []byte) ([]byte, error)
		PublicKey() []byte
	}
)
