package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/ClaudeMonet1/alph-zap/internal/alephium/codec"
	"github.com/ClaudeMonet1/alph-zap/internal/alephium/node"
	"github.com/ClaudeMonet1/alph-zap/internal/metrics"
	"github.com/ClaudeMonet1/alph-zap/internal/nostr"
	"github.com/ClaudeMonet1/alph-zap/internal/signer"
	"github.com/ClaudeMonet1/alph-zap/internal/wallet"
)

type config struct {
	NodeURL     string        `long:"node-url" env:"ALEPHZAP_NODE_URL" description:"full node base URL" default:"http://127.0.0.1:12973"`
	Network     string        `long:"network" env:"ALEPHZAP_NETWORK" description:"network name" default:"mainnet"`
	Key         string        `long:"key" env:"ALEPHZAP_KEY" description:"nostr public key, npub or hex"`
	PrivateKey  string        `long:"private-key" env:"ALEPHZAP_PRIVATE_KEY" description:"hex private key, required for send"`
	To          string        `long:"to" description:"recipient address"`
	Amount      string        `long:"amount" description:"transfer amount in attoALPH"`
	HTTPTimeout time.Duration `long:"http-timeout" env:"ALEPHZAP_HTTP_TIMEOUT" description:"HTTP timeout for node requests" default:"30s"`
	RPS         int           `long:"rps" env:"ALEPHZAP_RPS" description:"node requests per second" default:"10"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	rest, err := flags.ParseArgs(&cfg, os.Args[1:])
	if err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}
	if len(rest) != 1 {
		logger.Fatal("expected exactly one command: derive, balance or send")
	}

	if err := run(ctx, rest[0], cfg, logger); err != nil {
		logger.Fatal("alephzap failed", zap.Error(err))
	}
}

func run(ctx context.Context, command string, cfg config, logger *zap.Logger) error {
	switch command {
	case "derive":
		return runDerive(cfg)
	case "balance":
		return runBalance(ctx, cfg, logger)
	case "send":
		return runSend(ctx, cfg, logger)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func runDerive(cfg config) error {
	pub, err := nostr.DecodePublicKey(cfg.Key)
	if err != nil {
		return err
	}
	c := codec.Mainnet()
	d, err := c.DeriveAddress(pub)
	if err != nil {
		return err
	}
	fmt.Printf("address: %s\n", d.Address)
	fmt.Printf("group:   %d\n", c.GroupOf(d.Hash))
	return nil
}

func runBalance(ctx context.Context, cfg config, logger *zap.Logger) error {
	pub, err := nostr.DecodePublicKey(cfg.Key)
	if err != nil {
		return err
	}
	svc, err := newWalletService(cfg, nil, logger)
	if err != nil {
		return err
	}
	bal, err := svc.SpendableBalance(ctx, pub)
	if err != nil {
		return err
	}
	fmt.Printf("balance: %s attoALPH (locked %s, %d utxos)\n", bal.Balance, bal.LockedBalance, bal.UtxoNum)
	return nil
}

func runSend(ctx context.Context, cfg config, logger *zap.Logger) error {
	if cfg.PrivateKey == "" {
		return errors.New("--private-key is required for send")
	}
	sg, err := signer.NewSchnorr(cfg.PrivateKey)
	if err != nil {
		return err
	}
	svc, err := newWalletService(cfg, sg, logger)
	if err != nil {
		return err
	}
	res, err := svc.Send(ctx, cfg.To, cfg.Amount)
	if err != nil {
		return err
	}
	fmt.Printf("submitted: %s (group %d -> %d)\n", res.TxID, res.FromGroup, res.ToGroup)
	return nil
}

func newWalletService(cfg config, sg wallet.Signer, logger *zap.Logger) (*wallet.Service, error) {
	client, err := node.New(cfg.NodeURL, cfg.HTTPTimeout, cfg.RPS, metrics.NewNodeClient(cfg.Network))
	if err != nil {
		return nil, fmt.Errorf("init node client: %w", err)
	}
	return wallet.NewService(codec.Mainnet(), client, sg, logger)
}
