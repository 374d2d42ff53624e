package profile

type ProfileResponse struct {
	ID          int    `json:"id"`           // ID пользователя
	Name        string `json:"name"`         // Имя
	Balance     int    `json:"balance"`      // Баланс
	GamesPlayed int    `json:"games_played"` // Всего сыграно раундов
	Wins        int    `json:"wins"`         // Побед
	Rating      int    `json:"rating"`       // Рейтинг
	GamesToday  int    `json:"games_today"`  // Сыграно за день
}

type TopPlayerResponse struct {
	Name        string `json:"name"`         // Имя
	Rating      int    `json:"rating"`       // Рейтинг
	Wins        int    `json:"wins"`         // Побед
	GamesPlayed int    `json:"games_played"` // Всего сыграно раундов
}
