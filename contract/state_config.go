package main

import "milkerfun/sdk"

// -----------------------------------------------------------------------------
// System Configuration State
// -----------------------------------------------------------------------------

// isContractInitialized returns true if init_config already ran.
func isContractInitialized() bool {
	ptr := sdk.StateGetObject(systemConfigKey())
	return ptr != nil && *ptr != ""
}

// requireInitialized reverts if the contract has not been initialized.
func requireInitialized() {
	if !isContractInitialized() {
		sdk.Revert("contract not initialized", errNotInitialized)
	}
}

// loadSystemConfig loads the singleton configuration from state.
func loadSystemConfig() *SystemConfig {
	ptr := sdk.StateGetObject(systemConfigKey())
	if ptr == nil || *ptr == "" {
		sdk.Revert("contract not initialized", errNotInitialized)
	}
	cfg, err := DecodeSystemConfig([]byte(*ptr))
	if err != nil {
		sdk.Abort("corrupt system config: " + err.Error())
	}
	return cfg
}

// saveSystemConfig stores the configuration (and global counter) back to state.
func saveSystemConfig(cfg *SystemConfig) {
	sdk.StateSetObject(systemConfigKey(), string(EncodeSystemConfig(cfg)))
}

// isAdmin returns true if the given address is the contract admin.
func isAdmin(cfg *SystemConfig, addr sdk.Address) bool {
	return cfg.Admin == addr
}
