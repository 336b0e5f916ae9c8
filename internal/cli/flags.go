package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile      string
	OutputDir    string
	AudioFormat  string
	AudioAPI     string
	BatchFile    string
	Accent       string
	AllAccents   bool
	SkipAudio    bool
	TranslitOnly bool
	LearnEntry   string
	FinalKhofK   bool
	ListModels   bool
	ListAccents  bool
	ArchiveMode  bool
	GUIMode      bool

	// LLM flags
	UseLLM      bool
	LLMProvider string
	LLMModel    string

	// eSpeak flags
	ESpeakSpeed     int
	ESpeakPitch     int
	ESpeakAmplitude int
	ESpeakWordGap   int

	// OpenAI flags
	OpenAIModel       string
	OpenAIVoice       string
	OpenAISpeed       float64
	OpenAIInstruction string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		AudioFormat:     "wav",
		AudioAPI:        "espeak",
		Accent:          "german",
		LLMProvider:     "openai",
		ESpeakSpeed:     140,
		ESpeakPitch:     45,
		ESpeakAmplitude: 100,
		ESpeakWordGap:   10,
		OpenAIModel:     "gpt-4o-mini-tts",
		OpenAISpeed:     0.9,
		OpenAIVoice:     "onyx",
	}
}
