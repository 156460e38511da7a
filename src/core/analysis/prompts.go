package analysis

const (
	QueryTransformationPromptTmpl = `You are an expert patent researcher. Your task is to analyze a user's invention description
and generate a structured JSON object containing *two* sets of search artifacts for searching
a patent database: one for the "base_technology" and one for the "novel_features".

1.  **base_technology_search**: Artifacts for the *general field* of the invention.
    This search should be *broad* to find foundational patents.
2.  **novel_features_search**: Artifacts for the *specific, new improvements*
    the user is claiming. This search should be *narrow* and *specific*.

For each set, generate:
-   **technical_keywords**: A list of 5-7 specific technical keywords and synonyms.
-   **hyde_abstract**: A "hypothetical document" abstract for that
    specific part of the invention.
-   **cpc_codes**: The 3-5 most likely Cooperative Patent Classification (CPC) codes.

**User's Invention Idea:**
"{{.UserDescription}}"

**Instructions:**
- Do not include any text, preamble, or explanation outside of the JSON object.
- If the idea is an *improvement* (e.g., "a better solar panel"), the
  base_technology should be "solar panel" and the novel_features
  should be about the *improvement*.

**Output (JSON format only):**
{
    "base_technology_search": {
        "technical_keywords": ["...", "..."],
        "hyde_abstract": "...",
        "cpc_codes": ["...", "..."]
    },
    "novel_features_search": {
        "technical_keywords": ["...", "..."],
        "hyde_abstract": "...",
        "cpc_codes": ["...", "..."]
    }
}`

	AnalystSynthesisPromptTmpl = `You are a professional Patent Analyst. Your job is to analyze a client's
proposed invention and compare it against a set of retrieved prior art.

Your goal is to provide a clear, structured, and expert-level summary that
highlights potential **technological overlaps** and assesses novelty.

**Client's Invention Description:**
---
{{.UserDescription}}
---

**Retrieved Prior Art Documents:**
---
{{.PriorArtContexts}}
---

**Your Task (produce a markdown-formatted report):**

1.  **Executive Summary:** Start with a brief, high-level summary of your findings.
    State clearly whether the retrieved prior art shows significant overlap with the
    client's idea.
2.  **Key Technological Overlaps:** For each *relevant* prior art document, create a
    sub-section. Identify the patent (e.g., "US-10000001-B2") and describe the
    *specific technologies* that overlap with the client's invention.
3.  **Potential Differentiators (If Any):** Based *only* on the provided contexts,
    highlight any aspects of the client's idea that *do not* appear to be
    explicitly mentioned in the retrieved prior art.
4.  **Conclusion & Recommendation:** Conclude with a final assessment.

**Tone:** Professional, analytical, and objective.`
)
