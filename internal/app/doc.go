// Package app is the composition root for taskbar-weather.
//
// # Startup
//
// Run performs the same steps in every mode:
//
//  1. Initialise logging (a file under the user cache dir in overlay mode,
//     stderr otherwise)
//  2. Load config.toml, writing the commented template when it is missing
//  3. Load .env and the TASKBAR_WEATHER_* environment overrides
//  4. Resolve the location: command line, then environment, then config
//     file, each field independently
//  5. Build the weather client for the configured provider
//  6. Hand over to the scheduler in the selected mode
//
// An unresolved location prints guidance and returns a reported
// location.ErrLocationMissing before anything is fetched.
//
// # Modes
//
//	oneshot   one fetch, one line on stdout, error on failure
//	headless  one line per refresh interval until cancelled
//	overlay   Bubble Tea surface plus the stealth routine
//
// In overlay mode the first fetch and the stealth routine start from the
// overlay's OnStart hook, and every refresh tick issues another fetch unit.
// Results flow back through the overlay.Handle, which is revoked when the
// program exits.
//
// # Errors
//
// Errors already written to stderr are wrapped so IsReported returns true;
// main prints only the others.
package app
