/*
Package config resolves node settings.

Settings are read from the "ApplicationConfiguration" section of the
config.json file (config.<network>.json when NEO_NETWORK is set) found in
the working directory or next to the node executable. Missing files and
values are replaced with defaults, while malformed values are reported as
errors.

Process-wide settings are published once: either explicitly via Initialize
or on the first Default call, and never change afterwards.
*/
package config
