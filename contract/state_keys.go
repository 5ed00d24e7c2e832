package main

import "milkerfun/sdk"

// systemConfigKey is the fixed one-byte key the singleton config sits under.
func systemConfigKey() string {
	return string([]byte{kSystemConfig})
}

// farmKey mixes the prefix byte with the raw owner address so farms never
// collide with other record types in host storage.
func farmKey(owner sdk.Address) string {
	addrStr := owner.String()
	buf := make([]byte, 0, 1+len(addrStr))
	buf = append(buf, kFarm)
	buf = append(buf, addrStr...)
	return string(buf)
}
