package steam

// ownedGamesResponse is the JSON response for IPlayerService/GetOwnedGames.
type ownedGamesResponse struct {
	Response struct {
		GameCount int         `json:"game_count"`
		Games     []ownedGame `json:"games"`
	} `json:"response"`
}

// ownedGame is one entry of the owned games list.
type ownedGame struct {
	AppID           int64  `json:"appid"`
	Name            string `json:"name"`
	PlaytimeForever int64  `json:"playtime_forever"` // minutes
}

// playerAchievementsResponse is the JSON response for
// ISteamUserStats/GetPlayerAchievements.
type playerAchievementsResponse struct {
	PlayerStats struct {
		GameName     string        `json:"gameName"`
		Success      bool          `json:"success"`
		Achievements []achievement `json:"achievements"`
	} `json:"playerstats"`
}

// achievement is one per-achievement flag of an app.
type achievement struct {
	APIName  string `json:"apiname"`
	Achieved int    `json:"achieved"`
}
