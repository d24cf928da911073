package request

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Historical storefront callers send numeric fields as JSON numbers or as
// numeric strings, and product ids as strings or numbers, depending on the
// revision. These types absorb both; anything unparseable coerces to the
// zero value instead of failing the bind (the permissive-coercion policy the
// original callers rely on).

type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	*f = 0
	raw := strings.TrimSpace(string(b))
	if raw == "" || raw == "null" {
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*f = FlexFloat(v)
		}
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err == nil {
		*f = FlexFloat(v)
	}
	return nil
}

type FlexInt int

func (i *FlexInt) UnmarshalJSON(b []byte) error {
	var f FlexFloat
	if err := f.UnmarshalJSON(b); err != nil {
		return err
	}
	*i = FlexInt(int(f))
	return nil
}

type FlexString string

func (s *FlexString) UnmarshalJSON(b []byte) error {
	*s = ""
	raw := strings.TrimSpace(string(b))
	if raw == "" || raw == "null" {
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return nil
		}
		*s = FlexString(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*s = FlexString(n.String())
	}
	return nil
}
