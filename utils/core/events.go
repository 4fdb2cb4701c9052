package core

import (
	"github.com/ChainSafe/log15"
	"github.com/ethereum/go-ethereum/common"

	"github.com/trivaneio/trivane-contracts/utils/msg"
)

// Event is a registry or orchestrator state-change notification, the
// contract-event surface of this subsystem.
type Event interface {
	Name() string
}

type ChainAdded struct {
	Id msg.ChainId
}

func (ChainAdded) Name() string { return "ChainAdded" }

type ChainRemoved struct {
	Id msg.ChainId
}

func (ChainRemoved) Name() string { return "ChainRemoved" }

type OwnershipTransferred struct {
	Previous common.Address
	Next     common.Address
}

func (OwnershipTransferred) Name() string { return "OwnershipTransferred" }

// RemoteAssetDeployed is emitted on remote legs only. The origin leg of a
// deployment emits nothing.
type RemoteAssetDeployed struct {
	Asset common.Address
	Spec  msg.AssetSpec
	Salt  msg.Salt
}

func (RemoteAssetDeployed) Name() string { return "RemoteAssetDeployed" }

// Emitter receives events as they happen. Emit must not fail; sinks that can
// fail log instead.
type Emitter interface {
	Emit(e Event)
}

type logEmitter struct {
	log log15.Logger
}

// NewLogEmitter returns an Emitter that writes each event to logger.
func NewLogEmitter(logger log15.Logger) Emitter {
	return &logEmitter{log: logger}
}

func (l *logEmitter) Emit(e Event) {
	switch ev := e.(type) {
	case ChainAdded:
		l.log.Info("chain added", "chain", ev.Id)
	case ChainRemoved:
		l.log.Info("chain removed", "chain", ev.Id)
	case OwnershipTransferred:
		l.log.Info("ownership transferred", "previous", ev.Previous.Hex(), "next", ev.Next.Hex())
	case RemoteAssetDeployed:
		l.log.Info("remote asset deployed", "asset", ev.Asset.Hex(), "spec", ev.Spec.String())
	default:
		l.log.Info("event emitted", "event", e.Name())
	}
}
