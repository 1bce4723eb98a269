// Package ports defines the interfaces between the application core and
// its adapters: the backend API client, the session store, the page and
// action services exposed over HTTP, and health checking. Adapters
// implement these interfaces; the application core depends only on the
// interfaces, never on concrete adapter types.
package ports
