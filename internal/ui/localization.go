package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyLoadingHeadlines   = "loading_headlines"
	KeySelectStories      = "select_stories"
	KeyGeneratePodcast    = "generate_podcast"
	KeyRefresh            = "refresh"
	KeyRetry              = "retry"
	KeyErrorLoading       = "error_loading"
	KeyResearchingStories = "researching_stories"
	KeyGeneratingAudio    = "generating_audio"
	KeyGenerationFailed   = "generation_failed"
	KeyNowPlaying         = "now_playing"
	KeyPlay               = "play"
	KeyPause              = "pause"
	KeySaveEpisode        = "save_episode"
	KeySavedTo            = "saved_to"
	KeySaveFailed         = "save_failed"
	KeyBack               = "back"
	KeySettings           = "settings"
	KeyAPIBaseURL         = "api_base_url"
	KeyAutoplay           = "autoplay"
	KeyExportDirectory    = "export_directory"
	KeyLanguage           = "language"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeySettingsSaved      = "settings_saved"
	KeyNoSelection        = "no_selection"
	KeySelectedCount      = "selected_count"
	KeyGenerationBusy     = "generation_busy"
	KeyMoreStoryOne       = "more_story_one"
	KeyMoreStoryMany      = "more_story_many"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "Newscast",
		KeyLoadingHeadlines:   "Loading today's headlines...",
		KeySelectStories:      "Select stories for your podcast",
		KeyGeneratePodcast:    "Generate Podcast",
		KeyRefresh:            "Refresh",
		KeyRetry:              "Retry",
		KeyErrorLoading:       "Could not load headlines",
		KeyResearchingStories: "Researching selected stories...",
		KeyGeneratingAudio:    "Generating audio...",
		KeyGenerationFailed:   "Podcast generation failed",
		KeyNowPlaying:         "Now Playing",
		KeyPlay:               "Play",
		KeyPause:              "Pause",
		KeySaveEpisode:        "Save Episode",
		KeySavedTo:            "Saved to",
		KeySaveFailed:         "Could not save episode",
		KeyBack:               "Back",
		KeySettings:           "Settings",
		KeyAPIBaseURL:         "Backend URL",
		KeyAutoplay:           "Autoplay when ready",
		KeyExportDirectory:    "Export directory",
		KeyLanguage:           "Language",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeySettingsSaved:      "Settings saved",
		KeyNoSelection:        "Select at least one story",
		KeySelectedCount:      "selected",
		KeyGenerationBusy:     "A podcast is already being generated",
		KeyMoreStoryOne:       "+1 story",
		KeyMoreStoryMany:      "+%d stories",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "Newscast",
		KeyLoadingHeadlines:   "Загрузка новостей...",
		KeySelectStories:      "Выберите истории для подкаста",
		KeyGeneratePodcast:    "Создать подкаст",
		KeyRefresh:            "Обновить",
		KeyRetry:              "Повторить",
		KeyErrorLoading:       "Не удалось загрузить новости",
		KeyResearchingStories: "Исследуем выбранные истории...",
		KeyGeneratingAudio:    "Генерация аудио...",
		KeyGenerationFailed:   "Не удалось создать подкаст",
		KeyNowPlaying:         "Сейчас играет",
		KeyPlay:               "Играть",
		KeyPause:              "Пауза",
		KeySaveEpisode:        "Сохранить эпизод",
		KeySavedTo:            "Сохранено в",
		KeySaveFailed:         "Не удалось сохранить эпизод",
		KeyBack:               "Назад",
		KeySettings:           "Настройки",
		KeyAPIBaseURL:         "Адрес сервера",
		KeyAutoplay:           "Автовоспроизведение",
		KeyExportDirectory:    "Папка экспорта",
		KeyLanguage:           "Язык",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeySettingsSaved:      "Настройки сохранены",
		KeyNoSelection:        "Выберите хотя бы одну историю",
		KeySelectedCount:      "выбрано",
		KeyGenerationBusy:     "Подкаст уже создаётся",
		KeyMoreStoryOne:       "+1 история",
		KeyMoreStoryMany:      "+%d историй",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "Newscast",
		KeyLoadingHeadlines:   "Carregando as manchetes de hoje...",
		KeySelectStories:      "Selecione histórias para seu podcast",
		KeyGeneratePodcast:    "Gerar Podcast",
		KeyRefresh:            "Atualizar",
		KeyRetry:              "Tentar novamente",
		KeyErrorLoading:       "Não foi possível carregar as manchetes",
		KeyResearchingStories: "Pesquisando histórias selecionadas...",
		KeyGeneratingAudio:    "Gerando áudio...",
		KeyGenerationFailed:   "Falha na geração do podcast",
		KeyNowPlaying:         "Tocando agora",
		KeyPlay:               "Tocar",
		KeyPause:              "Pausar",
		KeySaveEpisode:        "Salvar episódio",
		KeySavedTo:            "Salvo em",
		KeySaveFailed:         "Não foi possível salvar o episódio",
		KeyBack:               "Voltar",
		KeySettings:           "Configurações",
		KeyAPIBaseURL:         "URL do servidor",
		KeyAutoplay:           "Reprodução automática",
		KeyExportDirectory:    "Diretório de exportação",
		KeyLanguage:           "Idioma",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeySettingsSaved:      "Configurações salvas",
		KeyNoSelection:        "Selecione pelo menos uma história",
		KeySelectedCount:      "selecionadas",
		KeyGenerationBusy:     "Um podcast já está sendo gerado",
		KeyMoreStoryOne:       "+1 história",
		KeyMoreStoryMany:      "+%d histórias",
	}
}
