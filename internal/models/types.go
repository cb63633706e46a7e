package models

type User struct {
	Username            string   `json:"username"`
	Email               string   `json:"email"`
	Password            string   `json:"-"`      // plaintext
	Weight              float64  `json:"weight"` // kg
	Height              float64  `json:"height"` // cm
	Age                 int      `json:"age"`
	Gender              string   `json:"gender"`
	FitnessGoal         string   `json:"fitness_goal"`
	PrivacySettings     string   `json:"privacy_settings"`
	DietaryPreferences  string   `json:"dietary_preferences"`
	DietaryRestrictions string   `json:"dietary_restrictions"`
	DailyCalorieGoal    float64  `json:"daily_calorie_goal"`
	Friends             []string `json:"friends"`
}

// FriendCount is the number of entries in the friend list, duplicates included.
func (u *User) FriendCount() int {
	return len(u.Friends)
}

type Goal struct {
	Type     string  `json:"type"`
	Target   float64 `json:"target"`
	Deadline string  `json:"deadline"` // free text, not a parsed date
	Progress float64 `json:"progress"` // 0-100%
}

type Workout struct {
	Type      string  `json:"type"`
	Duration  int     `json:"duration"` // minutes
	Intensity float64 `json:"intensity"`
}

type Nutrition struct {
	Food     string  `json:"food"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type SocialPost struct {
	Username string `json:"username"`
	Content  string `json:"content"`
}

type Challenge struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	Deadline         string `json:"deadline"`
	IsActive         bool   `json:"is_active"`
	ParticipantCount int    `json:"participant_count"` // counter only, no membership
}

type Recommendation struct {
	Workout   string `json:"workout"`
	Nutrition string `json:"nutrition"`
}
