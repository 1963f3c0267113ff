package resources

import (
	"encoding/json"

	engineerr "github.com/KirkDiggler/dnd-character-engine/internal/errors"
)

type envelope struct {
	Type OperationType `json:"type"`
}

// DecodeOperation parses the wire form {"type": "...", ...fields}
func DecodeOperation(data []byte) (Operation, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, engineerr.WrapWithCode(err, engineerr.CodeInvalidArgument, "decode operation")
	}

	switch env.Type {
	case OpUseResource:
		return decode[UseResource](data)
	case OpRecoverResource:
		return decode[RecoverResource](data)
	case OpShortRest:
		return decode[ShortRest](data)
	case OpLongRest:
		return LongRest{}, nil
	case OpUpdateDeathSaves:
		return decode[UpdateDeathSaves](data)
	case OpRollDeathSave:
		return decode[RollDeathSave](data)
	case OpSetConcentration:
		return decode[SetConcentration](data)
	case OpDamage:
		return decode[Damage](data)
	case OpHeal:
		return decode[Heal](data)
	case OpSetTemporaryHP:
		return decode[SetTemporaryHP](data)
	case OpAddCondition:
		return decode[AddCondition](data)
	case OpRemoveCondition:
		return decode[RemoveCondition](data)
	case OpSetExhaustion:
		return decode[SetExhaustion](data)
	case "":
		return nil, engineerr.InvalidArgument("operation type is required")
	default:
		return nil, engineerr.InvalidArgumentf("unknown operation type %q", env.Type).
			WithMeta("type", string(env.Type))
	}
}

func decode[T Operation](data []byte) (Operation, error) {
	var op T
	if err := json.Unmarshal(data, &op); err != nil {
		return nil, engineerr.WrapWithCode(err, engineerr.CodeInvalidArgument, "decode operation")
	}
	return op, nil
}

// EncodeOperation renders op in its wire form
func EncodeOperation(op Operation) ([]byte, error) {
	body, err := json.Marshal(op)
	if err != nil {
		return nil, engineerr.WrapWithCode(err, engineerr.CodeInternal, "encode operation")
	}

	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, engineerr.WrapWithCode(err, engineerr.CodeInternal, "encode operation")
	}
	typeJSON, err := json.Marshal(op.Type())
	if err != nil {
		return nil, engineerr.WrapWithCode(err, engineerr.CodeInternal, "encode operation")
	}
	fields["type"] = typeJSON

	return json.Marshal(fields)
}
