package recommend

import (
	"fmt"
	"strings"

	"github.com/speechlens/speechlens/internal/analysis"
)

// BuildPrompt renders the metrics and transcript into the instruction
// sent to the language model. The prompt language follows the speech
// language: Russian speech gets the Russian template, everything else
// the English one.
func BuildPrompt(transcript string, m *analysis.SpeechMetrics, structure analysis.TextStructureReport, lang string) string {
	fillers := fillerLines(m.Fillers.Breakdown, lang)

	if lang == "ru" {
		if fillers == "" {
			fillers = "  (не обнаружено)"
		}
		return fmt.Sprintf(`Проанализируй речь на русском языке и дай конкретные рекомендации для улучшения.

ТЕКСТ РЕЧИ:
%s

МЕТРИКИ:
- Длительность: %g сек
- Количество слов: %d
- Темп речи: %g слов/мин (%s, норма: %d-%d)
- Короткие паузы: %d
- Длинные паузы (заминки): %d
- Слова-паразиты: %d раз
%s
- Монотонность: %s
- Динамика громкости: %s

АНАЛИЗ СТРУКТУРЫ ТЕКСТА:
- Количество предложений: %d
- Средняя длина предложения: %.1f слов
- Слишком длинные предложения: %d
- Частые повторы слов: %v

ЗАДАЧА
1) Оцени речь по шкале 1-10
Оцени следующие параметры:
 - Правильность (произношение + грамматика)
 - Логичность (структура и связность)
 - Понятность (ясность изложения)
 - Чистота речи (отсутствие паразитов)
 - Выразительность (интонация, работа с паузами, эмоции)

2) Ты можешь использовать только эти HTML теги: <b>, <i>, <u>, <code>, <pre>, <a>, <blockquote>. Другие строго запрещены.

3) Дай 3-5 рекомендаций по улучшению речи
Рекомендации должны быть:
 - конкретными,
 - реализуемыми,
 - основанными на метриках и тексте.

Сфокусируйся на:
 - темпе,
 - дикции,
 - паразитах,
 - структуре,
 - выразительности.

4) Найди проблемные места в тексте

Покажи конкретные фрагменты, которые звучат слабо, и предложи 2-3 улучшенных варианта каждого.

Формат ответа (строго):
 - 5 оценок (1-10)
 - 5 рекомендаций списком
 - Переформулировки проблемных фраз
Пиши кратко, структурировано и по делу.
`,
			transcript,
			m.DurationSec, m.WordCount,
			m.WordsPerMinute, m.TempoRating, analysis.OptimalWPMMin, analysis.OptimalWPMMax,
			m.ShortPauses, m.LongPauses,
			m.Fillers.Total, fillers,
			m.Prosody.Monotony, m.Prosody.Dynamics,
			structure.SentenceCount, structure.AvgSentenceLength,
			len(structure.LongSentences), structure.Repetitions)
	}

	if fillers == "" {
		fillers = "  (none detected)"
	}
	return fmt.Sprintf(`Analyze the speech in English and provide specific recommendations for improvement.

SPEECH TEXT:
%s

METRICS:
- Duration: %g sec
- Word count: %d
- Speech tempo: %g words/min (%s, norm: %d-%d)
- Short pauses: %d
- Long pauses (hesitations): %d
- Filler words: %d times
%s
- Monotony: %s
- Volume dynamics: %s

TEXT STRUCTURE ANALYSIS:
- Sentence count: %d
- Average sentence length: %.1f words
- Too long sentences: %d
- Frequent word repetitions: %v

TASK
1) Rate the speech on a scale of 1-10
Evaluate the following parameters:
 - Correctness (pronunciation + grammar)
 - Logic (structure and coherence)
 - Clarity (clear expression)
 - Speech purity (absence of fillers)
 - Expressiveness (intonation, pause work, emotions)

2) You can only use these HTML tags: <b>, <i>, <u>, <code>, <pre>, <a>, <blockquote>. Other tags are strictly prohibited.

3) Give 3-5 recommendations for speech improvement
Recommendations should be:
 - specific,
 - implementable,
 - based on metrics and text.

Focus on:
 - tempo,
 - diction,
 - fillers,
 - structure,
 - expressiveness.

4) Find problematic places in the text

Show specific fragments that sound weak, and suggest 2-3 improved versions of each.

Response format (strictly):
 - 5 ratings (1-10)
 - 5 recommendations in list form
 - Reformulations of problematic phrases
Write concisely, structured and to the point.
`,
		transcript,
		m.DurationSec, m.WordCount,
		m.WordsPerMinute, m.TempoRating, analysis.OptimalWPMMin, analysis.OptimalWPMMax,
		m.ShortPauses, m.LongPauses,
		m.Fillers.Total, fillers,
		m.Prosody.Monotony, m.Prosody.Dynamics,
		structure.SentenceCount, structure.AvgSentenceLength,
		len(structure.LongSentences), structure.Repetitions)
}

func fillerLines(breakdown map[string]int, lang string) string {
	if len(breakdown) == 0 {
		return ""
	}
	unit := "times"
	if lang == "ru" {
		unit = "раз"
	}
	var b strings.Builder
	first := true
	for word, count := range breakdown {
		if !first {
			b.WriteByte('\n')
		}
		first = false
		fmt.Fprintf(&b, "  - '%s': %d %s", word, count, unit)
	}
	return b.String()
}
