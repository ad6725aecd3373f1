// Package wallet composes the address codec, the node client and the signer
// into the zap-send flow: derive the sender's address, check funds, build,
// sign and submit a transfer.
package wallet

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"github.com/ClaudeMonet1/alph-zap/internal/alephium/codec"
	"github.com/ClaudeMonet1/alph-zap/internal/alephium/node"
	"github.com/ClaudeMonet1/alph-zap/pkg/base58"
)

// Service executes wallet operations for one Nostr identity.
type Service struct {
	codec  *codec.Codec
	node   NodeClient
	signer Signer
	logger *zap.Logger
}

// NewService builds a Service. The signer may be nil for read-only use;
// Send then fails.
func NewService(c *codec.Codec, nodeClient NodeClient, signer Signer, logger *zap.Logger) (*Service, error) {
	if c == nil {
		return nil, errors.New("codec is required")
	}
	if nodeClient == nil {
		return nil, errors.New("node client is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	return &Service{
		codec:  c,
		node:   nodeClient,
		signer: signer,
		logger: logger,
	}, nil
}

// Account is the chain identity derived from a Nostr public key.
type Account struct {
	Address      string
	Group        uint8
	PublicKeyHex string
}

// AccountOf derives the chain account controlled by pub.
func (s *Service) AccountOf(pub []byte) (Account, error) {
	d, err := s.codec.DeriveAddress(pub)
	if err != nil {
		return Account{}, err
	}
	return Account{
		Address:      d.Address,
		Group:        s.codec.GroupOf(d.Hash),
		PublicKeyHex: hex.EncodeToString(pub),
	}, nil
}

// SpendableBalance queries the node for the balance of pub's address.
func (s *Service) SpendableBalance(ctx context.Context, pub []byte) (*node.Balance, error) {
	acct, err := s.AccountOf(pub)
	if err != nil {
		return nil, err
	}
	bal, err := s.node.GetBalance(ctx, acct.Address)
	if err != nil {
		return nil, fmt.Errorf("query balance of %s: %w", acct.Address, err)
	}
	s.logger.Debug("balance fetched",
		zap.String("address", acct.Address),
		zap.String("balance", bal.Balance),
		zap.Int("utxo_num", bal.UtxoNum),
	)
	return bal, nil
}

// SendResult reports a submitted transfer.
type SendResult struct {
	TxID      string
	FromGroup int
	ToGroup   int
}

// Send transfers attoAmount (a decimal attoALPH string) from the signer's
// account to toAddress: build on the node, sign the transaction id, submit.
func (s *Service) Send(ctx context.Context, toAddress, attoAmount string) (*SendResult, error) {
	if s.signer == nil {
		return nil, errors.New("signer is required for send")
	}
	if err := validateDestination(toAddress, attoAmount); err != nil {
		return nil, err
	}

	acct, err := s.AccountOf(s.signer.PublicKey())
	if err != nil {
		return nil, fmt.Errorf("derive sender account: %w", err)
	}

	unsigned, err := s.node.BuildTransaction(ctx, node.BuildTransactionRequest{
		FromPublicKey: acct.PublicKeyHex,
		Destinations:  []node.Destination{{Address: toAddress, AttoAlphAmount: attoAmount}},
	})
	if err != nil {
		return nil, fmt.Errorf("build transaction: %w", err)
	}

	txID, err := hex.DecodeString(unsigned.TxID)
	if err != nil {
		return nil, fmt.Errorf("decode transaction id %q: %w", unsigned.TxID, err)
	}
	sig, err := s.signer.Sign(txID)
	if err != nil {
		return nil, fmt.Errorf("sign transaction: %w", err)
	}

	res, err := s.node.SubmitTransaction(ctx, node.SubmitTransactionRequest{
		UnsignedTx: unsigned.UnsignedTx,
		Signature:  hex.EncodeToString(sig),
	})
	if err != nil {
		return nil, fmt.Errorf("submit transaction: %w", err)
	}

	s.logger.Info("transaction submitted",
		zap.String("tx_id", res.TxID),
		zap.String("from", acct.Address),
		zap.String("to", toAddress),
		zap.String("amount", attoAmount),
		zap.Int("from_group", res.FromGroup),
		zap.Int("to_group", res.ToGroup),
	)

	return &SendResult{TxID: res.TxID, FromGroup: res.FromGroup, ToGroup: res.ToGroup}, nil
}

// validateDestination rejects obviously broken input before it reaches the
// node. Recipients may be any address kind, so only the encoding is checked,
// not the tag byte.
func validateDestination(toAddress, attoAmount string) error {
	if toAddress == "" {
		return errors.New("recipient address is required")
	}
	body, err := base58.Decode(toAddress)
	if err != nil {
		return fmt.Errorf("recipient address: %w", err)
	}
	if len(body) == 0 {
		return errors.New("recipient address is empty after decoding")
	}
	amount, ok := new(big.Int).SetString(attoAmount, 10)
	if !ok || amount.Sign() <= 0 {
		return fmt.Errorf("amount %q is not a positive integer", attoAmount)
	}
	return nil
}
