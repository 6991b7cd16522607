// Command dsvcd is the Directory Service view-change node: it wires the
// config/logger bootstrap, the pebble-backed store, the DS committee, and
// VCCore into a long-running process that accepts inbound VC block frames
// over TCP and validates/applies them per spec.md §4.1.
//
// The command-line surface follows node/main.go's own conventions in
// spirit (a config directory flag, a debug flag) but is built on
// github.com/spf13/cobra rather than stdlib flag, following the
// command-with-RunE pattern used elsewhere for exactly this kind of
// daemon entrypoint (dgraph's cmd/*/run.go).
package main

import (
	"bufio"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/isybelharto/Zilliqa/config"
	"github.com/isybelharto/Zilliqa/consensus/committee"
	"github.com/isybelharto/Zilliqa/consensus/cosig"
	"github.com/isybelharto/Zilliqa/consensus/viewchange"
	"github.com/isybelharto/Zilliqa/crypto"
	"github.com/isybelharto/Zilliqa/store"
	"github.com/isybelharto/Zilliqa/types"
	"github.com/isybelharto/Zilliqa/wire"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		configPath string
		debug      bool
		listenAddr string
	)

	cmd := &cobra.Command{
		Use:   "dsvcd",
		Short: "Directory Service view-change validation node",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath, listenAddr, debug)
		},
	}

	cmd.Flags().StringVar(
		&configPath, "config",
		filepath.Join(".", "dsvcd.yaml"),
		"path to the node's YAML configuration file",
	)
	cmd.Flags().BoolVar(
		&debug, "debug", false,
		"sets log output to debug (verbose)",
	)
	cmd.Flags().StringVar(
		&listenAddr, "listen", ":17654",
		"address to accept inbound view-change block frames on",
	)

	return cmd
}

func run(configPath, listenAddr string, debug bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	logger, closer, err := cfg.CreateLogger(debug)
	if err != nil {
		return errors.Wrap(err, "create logger")
	}
	defer closer.Close()
	defer logger.Sync()

	core, err := buildCore(cfg, logger)
	if err != nil {
		logger.Fatal("failed to build view-change core", zap.Error(err))
	}

	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		logger.Fatal("failed to listen", zap.Error(err), zap.String("addr", listenAddr))
	}
	logger.Info("listening for view-change blocks", zap.String("addr", listenAddr))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	go acceptLoop(ctx, listener, core, logger)

	<-done
	logger.Info("shutting down")
	cancel()
	return listener.Close()
}

func buildCore(cfg *config.Config, logger *zap.Logger) (*viewchange.Core, error) {
	members, selfPubKey, err := cfg.Committee.Resolve()
	if err != nil {
		return nil, errors.Wrap(err, "resolve committee config")
	}

	db, err := store.NewPebbleDB(cfg.DB)
	if err != nil {
		return nil, errors.Wrap(err, "open store")
	}

	consensusCtx := &viewchange.ConsensusContext{
		Committee:  committee.New(members),
		LinkChain:  store.NewPebbleBlockLinkChain(db),
		Store:      store.NewPebbleBlockStore(db),
		Epochs:     viewchange.NewInMemoryEpochTracker(),
		SelfPubKey: selfPubKey,
		Config:     cfg.Consensus,
	}

	bls := crypto.New()
	coSig := cosig.New(bls)
	mutator := committee.NewMutator(selfPubKey, cfg.Consensus.GuardMode, logger)
	broadcaster := newLogBroadcaster(logger)

	core := viewchange.NewCore(consensusCtx, coSig, mutator, broadcaster, logger)
	core.LookupNodeMode = cfg.Consensus.LookupNodeMode
	core.BroadcastTreebasedClusterMode = cfg.Consensus.BroadcastTreebasedClusterMode

	return core, nil
}

// acceptLoop accepts connections and reads one length-prefixed frame per
// connection, matching the [4-byte length][MessageType][InstructionType]
// [body] framing implied by spec.md §6's outbound frame layout.
func acceptLoop(ctx context.Context, listener net.Listener, core *viewchange.Core, logger *zap.Logger) {
	for {
		conn, err := listener.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return
			default:
				logger.Warn("accept failed", zap.Error(err))
				continue
			}
		}
		go handleConn(ctx, conn, core, logger)
	}
}

func handleConn(ctx context.Context, conn net.Conn, core *viewchange.Core, logger *zap.Logger) {
	defer conn.Close()

	peer := peerFromAddr(conn.RemoteAddr())
	reader := bufio.NewReader(conn)

	var lengthBuf [4]byte
	if _, err := io.ReadFull(reader, lengthBuf[:]); err != nil {
		if err != io.EOF {
			logger.Warn("failed to read frame length", zap.Error(err))
		}
		return
	}
	length := binary.BigEndian.Uint32(lengthBuf[:])

	frame := make([]byte, length)
	if _, err := io.ReadFull(reader, frame); err != nil {
		logger.Warn("failed to read frame body", zap.Error(err))
		return
	}

	if len(frame) < 2 || frame[0] != wire.MessageTypeNode || frame[1] != wire.InstructionTypeVCBlk {
		logger.Warn("unrecognized frame header")
		return
	}

	if err := core.ProcessVCBlock(ctx, frame, 2, peer); err != nil {
		logger.Warn("view change block rejected", zap.Error(err), zap.String("from", peer.String()))
	}
}

func peerFromAddr(addr net.Addr) (p types.Peer) {
	host, portStr, err := net.SplitHostPort(addr.String())
	if err != nil {
		return
	}
	var port uint32
	fmt.Sscanf(portStr, "%d", &port)
	return types.Peer{IPAddr: host, Port: port}
}
