package nakama

import (
	"fmt"

	"killspree/internal/app"

	"github.com/google/uuid"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

var labelMarshal = protojson.MarshalOptions{EmitUnpopulated: true}

// decodePayload parses a JSON object payload. An empty payload decodes to an empty object.
func decodePayload(data []byte) (*structpb.Struct, error) {
	payload := &structpb.Struct{}
	if len(data) == 0 {
		return payload, nil
	}
	if err := protojson.Unmarshal(data, payload); err != nil {
		return nil, fmt.Errorf("failed to decode payload: %w", err)
	}
	return payload, nil
}

func stringField(payload *structpb.Struct, name string) string {
	return payload.GetFields()[name].GetStringValue()
}

// encodeObject marshals a flat map of JSON-compatible values.
func encodeObject(fields map[string]any) ([]byte, error) {
	payload, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to build payload: %w", err)
	}
	return protojson.Marshal(payload)
}

// encodeEvent maps an app event to its op code and wire payload.
func encodeEvent(ev app.Event) (int64, []byte, error) {
	var opCode int64
	fields := map[string]any{fieldID: uuid.NewString()}

	switch p := ev.Payload.(type) {
	case app.AnnouncementPayload:
		opCode = OpSpreeAnnouncement
		fields[fieldText] = p.Text
	case app.ReportPayload:
		opCode = OpSpreeReport
		fields[fieldText] = p.Report.Text
		fields[fieldKind] = string(p.Report.Kind)
		fields[fieldCount] = p.Report.Count
		if p.Report.Target != nil {
			fields[fieldTarget] = p.Report.Target.UserID
		}
	case app.NoticePayload:
		opCode = OpPlayerNotice
		fields[fieldText] = p.Text
	default:
		return 0, nil, fmt.Errorf("unknown event kind %q", ev.Kind)
	}

	data, err := encodeObject(fields)
	if err != nil {
		return 0, nil, err
	}
	return opCode, data, nil
}

// matchLabel renders the listing label for a spree match.
func matchLabel(players int) (string, error) {
	label, err := structpb.NewStruct(map[string]any{
		"game":    MatchLabelGame,
		"players": players,
	})
	if err != nil {
		return "", err
	}
	data, err := labelMarshal.Marshal(label)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
