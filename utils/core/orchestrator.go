package core

import (
	"fmt"
	"math/big"

	"github.com/ChainSafe/log15"
	"github.com/ethereum/go-ethereum/common"

	"github.com/trivaneio/trivane-contracts/derive"
	"github.com/trivaneio/trivane-contracts/utils/msg"
)

// Creator is the deterministic-create primitive of one domain. The resulting
// address depends only on (deployer, salt, hash(code)); implementations must
// fail observably on empty code and on address collision.
type Creator interface {
	Create(value *big.Int, salt msg.Salt, code []byte) (common.Address, error)
}

// Messenger is one domain's endpoint into the cross-domain transport.
// Send returns a non-zero handle on an accepted send; the transport is
// trusted for relay authenticity only, not for ordering or delivery.
type Messenger interface {
	Send(dest msg.ChainId, target common.Address, payload []byte) (msg.Handle, error)
	Address() common.Address
}

// Recorder persists deployment history. Recording never blocks orchestration:
// failures are logged and dropped.
type Recorder interface {
	RecordDeployment(domain msg.ChainId, asset common.Address, spec msg.AssetSpec, salt msg.Salt, remote bool) error
	RecordSync(source, dest msg.ChainId, handle msg.Handle, sent bool, memo string) error
}

type noopRecorder struct{}

func (noopRecorder) RecordDeployment(msg.ChainId, common.Address, msg.AssetSpec, msg.Salt, bool) error {
	return nil
}

func (noopRecorder) RecordSync(msg.ChainId, msg.ChainId, msg.Handle, bool, string) error {
	return nil
}

// Inbound is the authentication context of a cross-domain call, passed
// explicitly so the two-factor check is testable without a live transport.
// Caller is the immediate domain-local caller; Sender is the application-level
// sender on the source domain as reported by the transport.
type Inbound struct {
	Caller common.Address
	Sender common.Address
}

// Orchestrator coordinates deployment of the replicated asset for one domain.
// It owns that domain's registry and owner state; nothing here is shared
// across domains except through the Messenger.
//
// Orchestrators on different domains must be constructed with the same
// Address, since the deterministic-create formula folds the deployer in.
type Orchestrator struct {
	domain   msg.ChainId
	addr     common.Address
	owned    *Owned
	registry *ChainRegistry
	creator  Creator
	msngr    Messenger
	recorder Recorder
	emit     Emitter
	log      log15.Logger
}

// NewOrchestrator wires one domain's orchestrator. self is the orchestrator's
// own address, identical on every domain; owner must be non-zero. A nil
// recorder disables history.
func NewOrchestrator(domain msg.ChainId, self, owner common.Address, creator Creator, msngr Messenger, recorder Recorder, logger log15.Logger) (*Orchestrator, error) {
	if logger == nil {
		logger = log15.New("system", "orchestrator", "domain", domain)
	}
	if recorder == nil {
		recorder = noopRecorder{}
	}
	emit := NewLogEmitter(logger)
	owned, err := NewOwned(owner, emit)
	if err != nil {
		return nil, err
	}
	return &Orchestrator{
		domain:   domain,
		addr:     self,
		owned:    owned,
		registry: NewChainRegistry(emit),
		creator:  creator,
		msngr:    msngr,
		recorder: recorder,
		emit:     emit,
		log:      logger,
	}, nil
}

// SetEmitter replaces the event sink for the orchestrator and its registry
// and owner state.
func (o *Orchestrator) SetEmitter(emit Emitter) {
	o.emit = emit
	o.registry.emit = emit
	o.owned.emit = emit
}

func (o *Orchestrator) Domain() msg.ChainId {
	return o.domain
}

func (o *Orchestrator) Address() common.Address {
	return o.addr
}

func (o *Orchestrator) Owner() common.Address {
	return o.owned.Owner()
}

// AddChain registers a destination domain for fan-out. Owner only.
func (o *Orchestrator) AddChain(caller common.Address, id msg.ChainId) error {
	if err := o.owned.Auth(caller); err != nil {
		return err
	}
	return o.registry.Add(id)
}

// RemoveChain unregisters a destination domain. Owner only.
func (o *Orchestrator) RemoveChain(caller common.Address, id msg.ChainId) error {
	if err := o.owned.Auth(caller); err != nil {
		return err
	}
	return o.registry.Remove(id)
}

func (o *Orchestrator) IsSupported(id msg.ChainId) bool {
	return o.registry.IsSupported(id)
}

func (o *Orchestrator) Chains() []msg.ChainId {
	return o.registry.Chains()
}

// SetOwner transfers ownership. Owner only; the new owner must be non-zero.
func (o *Orchestrator) SetOwner(caller, next common.Address) error {
	return o.owned.SetOwner(caller, next)
}

// Deploy places the asset on this domain and fans the deployment out to every
// registered domain. The returned address is final once the local create
// succeeds: a sync failure is reported through the error while the local
// deployment stays committed, so callers must check the error even when the
// address is non-zero.
func (o *Orchestrator) Deploy(name, symbol string, supply *big.Int, salt msg.Salt) (common.Address, error) {
	spec := msg.AssetSpec{
		Name:           name,
		Symbol:         symbol,
		InitialSupply:  supply,
		OriginDomainId: o.domain,
	}

	local, err := o.deploy(spec, salt)
	if err != nil {
		return common.Address{}, err
	}
	o.record(local, spec, salt, false)
	o.log.Info("deployed asset", "asset", local.Hex(), "name", name, "symbol", symbol, "salt", msg.Handle(salt).Hex())

	if err := o.sync(spec, salt); err != nil {
		return local, err
	}
	return local, nil
}

// DeployRemote is the remote leg of a deployment, reachable only through the
// transport. The bytecode is recomputed with the spec's original origin
// domain, so the address matches the origin leg. Terminal: it never fans out
// again, which is what keeps two registered domains from relaying forever.
func (o *Orchestrator) DeployRemote(in Inbound, spec msg.AssetSpec, salt msg.Salt) (common.Address, error) {
	if err := o.authenticate(in); err != nil {
		return common.Address{}, err
	}

	asset, err := o.deploy(spec, salt)
	if err != nil {
		return common.Address{}, err
	}
	o.record(asset, spec, salt, true)
	o.emit.Emit(RemoteAssetDeployed{Asset: asset, Spec: spec, Salt: salt})
	o.log.Info("deployed remote asset", "asset", asset.Hex(), "origin", spec.OriginDomainId)
	return asset, nil
}

// authenticate is the two-factor cross-domain gate: the immediate caller must
// be the transport singleton, and the transport-attested sender must be this
// same orchestrator on the source domain.
func (o *Orchestrator) authenticate(in Inbound) error {
	if in.Caller != o.msngr.Address() {
		return ErrCallerNotMessenger
	}
	if in.Sender != o.addr {
		return ErrInvalidCrossDomainSender
	}
	return nil
}

func (o *Orchestrator) deploy(spec msg.AssetSpec, salt msg.Salt) (common.Address, error) {
	code, err := derive.ComputeBytecode(spec)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %v", ErrDeploymentFailed, err)
	}
	asset, err := o.creator.Create(new(big.Int), salt, code)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %v", ErrDeploymentFailed, err)
	}
	return asset, nil
}

// sync sends one remote-deploy message per registered domain, skipping the
// origin. The loop aborts on the first rejected send; messages already
// accepted stay in flight and are not compensated.
func (o *Orchestrator) sync(spec msg.AssetSpec, salt msg.Salt) error {
	payload, err := msg.EncodeDeploy(spec, salt)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMessageSendingFailed, err)
	}

	chains := o.registry.Chains()
	for i, dest := range chains {
		if dest == spec.OriginDomainId {
			continue
		}

		handle, err := o.msngr.Send(dest, o.addr, payload)
		if err != nil || handle.IsZero() {
			memo := "transport returned zero handle"
			if err != nil {
				memo = err.Error()
			}
			o.recordSync(dest, handle, false, memo)
			return &SyncError{
				Failed: dest,
				Unsent: remaining(chains[i+1:], spec.OriginDomainId),
				Cause:  err,
			}
		}
		o.recordSync(dest, handle, true, "")
		o.log.Debug("sync message sent", "dest", dest, "handle", handle.Hex())
	}
	return nil
}

func remaining(chains []msg.ChainId, origin msg.ChainId) []msg.ChainId {
	out := make([]msg.ChainId, 0, len(chains))
	for _, id := range chains {
		if id != origin {
			out = append(out, id)
		}
	}
	return out
}

func (o *Orchestrator) record(asset common.Address, spec msg.AssetSpec, salt msg.Salt, remote bool) {
	if err := o.recorder.RecordDeployment(o.domain, asset, spec, salt, remote); err != nil {
		o.log.Error("failed to record deployment", "asset", asset.Hex(), "err", err)
	}
}

func (o *Orchestrator) recordSync(dest msg.ChainId, handle msg.Handle, sent bool, memo string) {
	if err := o.recorder.RecordSync(o.domain, dest, handle, sent, memo); err != nil {
		o.log.Error("failed to record sync message", "dest", dest, "err", err)
	}
}
