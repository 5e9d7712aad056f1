package config

// UnlockWalletSettings describes the wallet that should be opened
// automatically on node start. A missing section leaves all fields empty,
// which disables the feature.
type UnlockWalletSettings struct {
	Path string `yaml:"Path"`
	// Password is kept exactly as configured.
	Password       string `yaml:"Password"`
	StartConsensus bool   `yaml:"StartConsensus"`
	IsActive       bool   `yaml:"IsActive"`
}

func newUnlockWalletSettings(s *Section) (UnlockWalletSettings, error) {
	var res UnlockWalletSettings
	if !s.Exists() {
		return res, nil
	}
	var err error
	res.Path = getString(s, "Path", "")
	res.Password = getString(s, "Password", "")
	if res.StartConsensus, err = getBool(s, "StartConsensus", false); err != nil {
		return UnlockWalletSettings{}, err
	}
	if res.IsActive, err = getBool(s, "IsActive", false); err != nil {
		return UnlockWalletSettings{}, err
	}
	return res, nil
}
