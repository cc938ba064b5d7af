package nfd

// View controls how much of a record the API returns.
type View string

const (
	ViewTiny  View = "tiny"
	ViewBrief View = "brief"
	ViewFull  View = "full"
)

// Profile is the subset of an NFD record the card needs.
type Profile struct {
	AppID          int64       `json:"appID,omitempty"`
	Name           string      `json:"name"`
	Owner          string      `json:"owner,omitempty"`
	DepositAccount string      `json:"depositAccount,omitempty"`
	State          string      `json:"state,omitempty"`
	Properties     *Properties `json:"properties,omitempty"`
}

// Properties holds the user-defined and platform-verified key/value sets.
type Properties struct {
	Internal    map[string]string `json:"internal,omitempty"`
	UserDefined map[string]string `json:"userDefined,omitempty"`
	Verified    map[string]string `json:"verified,omitempty"`
}

// Avatar returns the avatar reference, verified before user-defined.
func (p *Profile) Avatar() string {
	return p.media("avatar")
}

// Banner returns the banner reference, verified before user-defined.
func (p *Profile) Banner() string {
	return p.media("banner")
}

func (p *Profile) media(key string) string {
	if p == nil || p.Properties == nil {
		return ""
	}
	if v := p.Properties.Verified[key]; v != "" {
		return v
	}
	return p.Properties.UserDefined[key]
}
