package pipeline

import (
	"time"

	"github.com/go-viper/mapstructure/v2"
)

// weakDecode copies input (a map) into out, converting strings to the
// target field types ("5" → 5, "true" → true, "1m" → time.Minute).
// Fields are matched by their json tag.
func weakDecode(input, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		TagName:          "json",
		Result:           out,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			mapstructure.TextUnmarshallerHookFunc(),
		),
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}
