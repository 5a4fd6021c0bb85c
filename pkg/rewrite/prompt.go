package rewrite

import "fmt"

var languageInstructions = map[string]string{
	"en": "Write the article in English.",
	"es": "Escribe el artículo en español (Spanish).",
	"fr": "Écrivez l'article en français (French).",
	"de": "Schreiben Sie den Artikel auf Deutsch (German).",
	"pt": "Escreva o artigo em português (Portuguese).",
	"ru": "Напишите статью на русском языке (Russian).",
	"zh": "用中文撰写文章 (Chinese).",
	"hi": "लेख हिंदी में लिखें (Hindi).",
	"bn": "নিবন্ধটি বাংলায় লিখুন (Bengali).",
	"ta": "கட்டுரையை தமிழில் எழுதுங்கள் (Tamil).",
}

const seoInstructions = `
SEO OPTIMIZATION REQUIREMENTS:
1. Use the primary keyword in the first paragraph
2. Include semantic keywords naturally throughout
3. Use H2 and H3 headings with keywords
4. Write a compelling meta description (excerpt)
5. Use short paragraphs (2-3 sentences each)
6. Include bullet points or numbered lists where appropriate
7. Add a strong hook in the first sentence
8. Make headlines attention-grabbing but accurate
9. Target 500-800 words for better SEO ranking
`

func languageInstruction(language string) string {
	if instruction, ok := languageInstructions[language]; ok {
		return instruction
	}
	return languageInstructions["en"]
}

func systemPrompt(input Input) string {
	seo := ""
	if input.OptimizeSEO {
		seo = seoInstructions
	}

	return fmt.Sprintf(`You are a professional news writer and SEO expert. Your task is to completely rewrite news articles to be original while maintaining factual accuracy.

IMPORTANT RULES:
1. Create a completely NEW and UNIQUE article - do not copy any phrases from the original
2. Maintain all factual information but express it in your own words
3. Use a professional, engaging news writing style
4. The article should be 500-800 words
5. Include relevant context and background information
6. Write in an objective, journalistic tone
7. %s
%s
Respond with a JSON object containing:
- "title": A new headline (60 characters max)
- "content": The full rewritten article in HTML format with <p>, <h2>, <h3>, <ul>, <li> tags
- "excerpt": A compelling meta description (150-160 characters)
- "imagePrompt": A detailed prompt to generate a relevant image for this article (always in English)
- "seoKeywords": An array of 5-8 relevant SEO keywords for this article`,
		languageInstruction(input.Language), seo)
}

func userPrompt(input Input) string {
	return fmt.Sprintf(`Please rewrite this news article:

Original Title: %s

Original Summary: %s

Source: %s

Create a completely original article based on this news. %s`,
		input.Title, input.Description, input.Source, languageInstruction(input.Language))
}
