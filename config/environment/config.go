package environment

import "os"

func GetPort() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return port
}

func GetAppEnv() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}
	return env
}

// GetAIProvider selects the generative model backend, "gemini" or "openai".
func GetAIProvider() string {
	provider := os.Getenv("AI_PROVIDER")
	if provider == "" {
		provider = "gemini"
	}
	return provider
}

func GetGeminiKey() string {
	return os.Getenv("GEMINI_API_KEY")
}

func GetOpenAIKey() string {
	return os.Getenv("OPENAI_API_KEY")
}

func GetFirebaseKey() string {
	return os.Getenv("FIREBASE_CREDENTIALS_BASE64")
}

func GetFirebaseProjectID() string {
	return os.Getenv("FIREBASE_PROJECT_ID")
}
