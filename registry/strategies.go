package registry

import "fmt"

// The strategy scripts project live registry objects down to plain
// JSON-safe data before returning. Framework objects carry functions and
// reference cycles that cannot cross the protocol boundary, so each
// script returns either null (shape absent) or a JSON string.

// extractJS reads the registry through the preview's full-extraction API,
// which yields a flat map of prepared stories keyed by story id.
const extractJS = `async () => {
	const preview = window.__STORYBOOK_PREVIEW__;
	if (!preview || typeof preview.extract !== 'function') { return null; }
	const extracted = await preview.extract();
	if (!extracted || typeof extracted !== 'object') { return null; }
	const stories = Object.values(extracted).map((story) => {
		const params = story.parameters || {};
		const docs = params.docs || {};
		const desc = docs.description || {};
		const argTypes = story.argTypes || {};
		const props = {};
		for (const name of Object.keys(argTypes)) {
			const arg = argTypes[name] || {};
			const type = arg.type || {};
			const table = arg.table || {};
			const prop = {
				description: arg.description || '',
				required: !!type.required,
				defaultValue: ''
			};
			if (table.defaultValue && table.defaultValue.summary != null) {
				prop.defaultValue = String(table.defaultValue.summary);
			}
			if (arg.type) { prop.type = arg.type; }
			props[name] = prop;
		}
		return {
			id: story.id || '',
			name: story.name || story.story || '',
			title: story.title || story.kind || '',
			componentId: story.componentId || '',
			importPath: String(params.fileName || ''),
			description: desc.component || '',
			props: props,
			parameters: {
				docsOnly: !!params.docsOnly,
				description: desc.story || '',
				sourceCode: (params.storySource && params.storySource.source) || ''
			}
		};
	});
	return JSON.stringify({ stories: stories });
}`

// projectionJS holds the helpers shared by every CSF file strategy. Each
// file carries component metadata (docgen description, props and
// subcomponents) plus the stories defined in it.
const projectionJS = `
	const projectStory = (story) => {
		const params = story.parameters || {};
		const docs = params.docs || {};
		const desc = docs.description || {};
		return {
			id: story.id || '',
			name: story.name || '',
			parameters: {
				docsOnly: !!params.docsOnly,
				description: desc.story || '',
				sourceCode: (params.storySource && params.storySource.source) || ''
			}
		};
	};
	const projectProps = (docgenProps) => {
		const props = {};
		for (const name of Object.keys(docgenProps || {})) {
			const p = docgenProps[name] || {};
			const prop = {
				description: p.description || '',
				required: !!p.required,
				defaultValue: ''
			};
			const dv = p.defaultValue;
			if (dv != null) {
				if (typeof dv === 'object') {
					prop.defaultValue = dv.value != null ? String(dv.value) : '';
				} else {
					prop.defaultValue = String(dv);
				}
			}
			const type = p.type || p.tsType;
			if (type) { prop.type = type; }
			props[name] = prop;
		}
		return props;
	};
	const projectComponent = (component) => {
		const info = component && component.__docgenInfo;
		if (!info) { return null; }
		return { description: info.description || '', props: projectProps(info.props) };
	};
	const projectFile = (path, file) => {
		const meta = file.meta || {};
		const params = meta.parameters || {};
		const docs = params.docs || {};
		const desc = docs.description || {};
		const componentMeta = projectComponent(meta.component) || { description: '', props: {} };
		if (!componentMeta.description && desc.component) {
			componentMeta.description = desc.component;
		}
		const subcomponents = {};
		for (const name of Object.keys(meta.subcomponents || {})) {
			const sub = projectComponent(meta.subcomponents[name]);
			if (sub) { subcomponents[name] = sub; }
		}
		componentMeta.subcomponents = subcomponents;
		return {
			id: meta.id || '',
			title: meta.title || '',
			importPath: String(path),
			meta: componentMeta,
			stories: file.stories ? Object.values(file.stories).map(projectStory) : null
		};
	};
`

// csfTemplate wraps an acquisition snippet that must bind a files
// variable holding the CSF file map, or return null.
const csfTemplate = `async () => {
	const preview = window.__STORYBOOK_PREVIEW__;
	const store = preview && preview.storyStore;
	if (!store) { return null; }
%s	if (!files || typeof files !== 'object') { return null; }
` + projectionJS + `
	const entries = Object.keys(files).map((path) => projectFile(path, files[path]));
	return JSON.stringify({ entries: entries });
}`

const (
	acquireViaCacheAll = `	if (typeof store.cacheAllCSFFiles !== 'function') { return null; }
	await store.cacheAllCSFFiles();
	const files = store.cachedCSFFiles;
`
	acquireCached = `	const files = store.cachedCSFFiles;
`
	acquireLegacyCached = `	const files = store._cachedCSFFiles;
`
	acquireCSFFiles = `	const files = store.csfFiles;
`
)

// observeJS reports the enumerable property names of the preview object
// and its story store, for version-compatibility diagnostics when no
// strategy matches.
const observeJS = `() => {
	const preview = window.__STORYBOOK_PREVIEW__;
	if (!preview) { return JSON.stringify({ preview: null, store: null }); }
	const store = preview.storyStore;
	return JSON.stringify({
		preview: Object.getOwnPropertyNames(preview),
		store: store ? Object.getOwnPropertyNames(store) : null
	});
}`

// Strategies returns the known registry shapes in priority order: the
// modern full-extraction API first, then the story store's CSF file cache
// under each of its historical property names.
func Strategies() []Strategy {
	return []Strategy{
		{Name: "extract", js: extractJS},
		{Name: "cacheAllCSFFiles", js: fmt.Sprintf(csfTemplate, acquireViaCacheAll)},
		{Name: "cachedCSFFiles", js: fmt.Sprintf(csfTemplate, acquireCached)},
		{Name: "_cachedCSFFiles", js: fmt.Sprintf(csfTemplate, acquireLegacyCached)},
		{Name: "csfFiles", js: fmt.Sprintf(csfTemplate, acquireCSFFiles)},
	}
}
