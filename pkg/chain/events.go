package chain

import (
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// AssociationStoredSignature is the canonical signature of the event the
// on-chain store emits when a record is persisted. The record's structured
// hash is the sole indexed topic and the record's primary identifier.
const AssociationStoredSignature = "AssociationStored(bytes32)"

// AssociationStoredID is the keccak topic identifying the event.
var AssociationStoredID = crypto.Keccak256Hash([]byte(AssociationStoredSignature))

// ErrNotAssociationStored is returned when a log does not carry the
// AssociationStored topic layout.
var ErrNotAssociationStored = errors.New("log is not an AssociationStored event")

// AssociationStoredEvent identifies a newly stored on-chain record.
type AssociationStoredEvent struct {
	// RecordHash is the structured hash of the stored record.
	RecordHash common.Hash

	// Contract is the store contract that emitted the event.
	Contract common.Address

	// BlockNumber orders events from the same contract.
	BlockNumber uint64

	TxHash common.Hash
}

// ParseAssociationStored decodes an AssociationStored event from a raw log.
func ParseAssociationStored(log types.Log) (*AssociationStoredEvent, error) {
	if len(log.Topics) != 2 || log.Topics[0] != AssociationStoredID {
		return nil, ErrNotAssociationStored
	}
	return &AssociationStoredEvent{
		RecordHash:  log.Topics[1],
		Contract:    log.Address,
		BlockNumber: log.BlockNumber,
		TxHash:      log.TxHash,
	}, nil
}

// CollectStoredHashes extracts the record hashes from a batch of logs,
// skipping logs that are not AssociationStored events. Order is preserved.
func CollectStoredHashes(logs []types.Log) []common.Hash {
	hashes := make([]common.Hash, 0, len(logs))
	for _, log := range logs {
		ev, err := ParseAssociationStored(log)
		if err != nil {
			continue
		}
		hashes = append(hashes, ev.RecordHash)
	}
	return hashes
}
