package contract

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Artifact is an ABI plus whatever else the source file carried.
type Artifact struct {
	ContractName string
	RawABI       json.RawMessage // the ABI array exactly as read
	ABI          []ABIEntry
	Bytecode     []byte // deployment bytecode, nil for raw ABI files
}

// LoadArtifact loads a local file that is either:
//   - a raw ABI JSON array: [{"type":"function",...}, ...]
//   - a Hardhat/Foundry artifact: {"abi":[...],"bytecode":"0x...",...}
//
// Both formats are detected automatically. Bytecode is optional.
func LoadArtifact(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read ABI file: %w", err)
	}
	art, err := ParseArtifact(data, path)
	if err != nil {
		return nil, err
	}
	if art.ContractName == "" {
		art.ContractName = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return art, nil
}

// LoadArtifactFull is LoadArtifact for callers that need to deploy: it fails
// when the file carries no bytecode.
func LoadArtifactFull(path string) (*Artifact, error) {
	art, err := LoadArtifact(path)
	if err != nil {
		return nil, err
	}
	if len(art.Bytecode) == 0 {
		return nil, fmt.Errorf("artifact has no bytecode, cannot deploy an interface or abstract contract: %s", path)
	}
	return art, nil
}

// ParseArtifact detects the format of data. source names the input in errors.
func ParseArtifact(data []byte, source string) (*Artifact, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: file is empty: %s", ErrInvalidABI, source)
	}

	// Attempt to detect a Hardhat/Foundry artifact (object with an "abi" key).
	var raw struct {
		ContractName string          `json:"contractName"`
		ABI          json.RawMessage `json:"abi"`
		Bytecode     json.RawMessage `json:"bytecode"`
	}
	if json.Unmarshal(data, &raw) == nil && len(raw.ABI) > 1 && raw.ABI[0] == '[' {
		abi, err := ParseABI(raw.ABI)
		if err != nil {
			return nil, err
		}
		if err := validateABI(abi, source); err != nil {
			return nil, err
		}
		art := &Artifact{ContractName: raw.ContractName, RawABI: raw.ABI, ABI: abi}
		if len(raw.Bytecode) > 0 {
			bc, err := decodeBytecode(raw.Bytecode)
			if err != nil {
				return nil, fmt.Errorf("extracting bytecode from artifact: %w", err)
			}
			art.Bytecode = bc
		}
		return art, nil
	}

	// Fall back: treat the whole file as a raw ABI array.
	abi, err := ParseABI(data)
	if err != nil {
		return nil, err
	}
	if err := validateABI(abi, source); err != nil {
		return nil, err
	}
	return &Artifact{RawABI: json.RawMessage(data), ABI: abi}, nil
}

// ReadBytecodeFile reads a .bin file holding hex bytecode, with or without 0x.
func ReadBytecodeFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read bytecode file: %w", err)
	}
	bc, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(string(data)), "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid bytecode hex in %s: %w", path, err)
	}
	return bc, nil
}

func decodeBytecode(raw json.RawMessage) ([]byte, error) {
	bcHex, err := extractBytecodeHex(raw)
	if err != nil {
		return nil, err
	}
	bcHex = strings.TrimPrefix(bcHex, "0x")
	if bcHex == "" {
		return nil, nil
	}
	bc, err := hex.DecodeString(bcHex)
	if err != nil {
		return nil, fmt.Errorf("invalid bytecode hex: %w", err)
	}
	return bc, nil
}

// extractBytecodeHex handles the two common artifact formats:
//   - Hardhat:  "bytecode": "0x608060..."          (JSON string)
//   - Foundry:  "bytecode": {"object": "0x608060..."} (JSON object)
func extractBytecodeHex(raw json.RawMessage) (string, error) {
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return strings.TrimSpace(str), nil
	}

	var obj struct {
		Object string `json:"object"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return strings.TrimSpace(obj.Object), nil
	}

	return "", fmt.Errorf("bytecode field is neither a hex string nor a {\"object\":\"0x...\"} object")
}

// validateABI checks that the parsed ABI has at least one function, event or
// constructor.
func validateABI(abi []ABIEntry, source string) error {
	if len(abi) == 0 {
		return fmt.Errorf("%w: ABI is empty (no functions or events found): %s", ErrInvalidABI, source)
	}
	for _, e := range abi {
		if e.Type == "function" || e.Type == "event" || e.Type == "constructor" || e.Type == "" {
			return nil
		}
	}
	return fmt.Errorf("%w: ABI has %d entries but none are functions or events: %s", ErrInvalidABI, len(abi), source)
}
