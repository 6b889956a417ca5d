// Package steam provides the source catalog client over the Steam Web API.
//
// It exposes the two operations a sync run needs:
//
//   - OwnedGames: the account's full catalog with app names and cumulative
//     playtime in minutes.
//   - Completion: the achievement completion ratio for one app.
//
// # Completion semantics
//
// The achievements endpoint answers 400 Bad Request for apps that define no
// trackable stats. That response is the expected "no stats" signal, not an
// error, and collapses to the Unknown sentinel. Every other failure also
// collapses to Unknown (logged at warn), so a stats lookup can never block
// the owning item's playtime or title update.
package steam
